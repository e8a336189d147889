package bot

// request payload for a conversation turn
type RespondRequest struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// response payload for a conversation turn; is_bot is always true
type RespondResponse struct {
	Reply string `json:"reply"`
	IsBot bool   `json:"is_bot"`
}
