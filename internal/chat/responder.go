package chat

import (
	"context"
	"strings"

	"codeberg.org/humanvsbot/server/internal/llm"
	"codeberg.org/humanvsbot/server/internal/logger"
)

// the reply returned to the game client. IsBot is always true: it tells the
// middleware which side authored the message, it is not negotiated.
type Reply struct {
	Text  string `json:"reply"`
	IsBot bool   `json:"is_bot"`
}

// handles conversation turns against the session store and generation backend
type Responder struct {
	store     *Store
	generator llm.TextGenerator
	fallback  string
}

func NewResponder(store *Store, generator llm.TextGenerator) *Responder {
	return &Responder{
		store:     store,
		generator: generator,
		fallback:  FallbackReply,
	}
}

// processes one turn: resolves the session, sends the accumulated history plus
// the new message to the backend, appends both sides on success. Never returns
// an error - any backend failure becomes the in-character fallback reply, since
// a raw error surfacing to the player would itself be a tell.
func (r *Responder) Respond(ctx context.Context, sessionID, text string) Reply {
	session := r.store.GetOrCreate(sessionID)

	// hold the session for the whole turn so concurrent submits for the same
	// room cannot interleave their history appends
	session.mu.Lock()
	defer session.mu.Unlock()

	messages := make([]llm.Message, 0, len(session.history)+1)
	messages = append(messages, session.history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := r.generator.GenerateText(ctx, llm.GenerationRequest{Messages: messages})
	if err != nil {
		// the real cause is logged here even though the player only ever sees
		// the fallback text
		logger.ErrorErr(err, "generation backend call failed",
			"session_id", sessionID,
			"model", r.generator.Model(),
		)

		return Reply{Text: r.fallback, IsBot: true}
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		logger.Error("generation backend returned blank reply",
			"session_id", sessionID,
			"model", r.generator.Model(),
		)

		return Reply{Text: r.fallback, IsBot: true}
	}

	// append user message and reply together - a failed turn leaves the
	// history untouched
	session.history = append(session.history,
		llm.Message{Role: llm.RoleUser, Content: text},
		llm.Message{Role: llm.RoleModel, Content: reply},
	)

	return Reply{Text: reply, IsBot: true}
}
