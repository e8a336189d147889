package chat

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"codeberg.org/humanvsbot/server/internal/llm"
)

func testSeed() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleUser, Content: "INSTRUCTION: play the game"},
		{Role: llm.RoleModel, Content: "bet"},
	}
}

func TestStoreGetOrCreate_SeedsNewSession(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)
	defer store.Close()

	session := store.GetOrCreate("room-1")

	if session == nil {
		t.Fatal("expected session to be created")
	}

	if session.ID != "room-1" {
		t.Errorf("ID = %s, want room-1", session.ID)
	}

	history := session.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (priming pair)", len(history))
	}

	if history[0].Role != llm.RoleUser || history[1].Role != llm.RoleModel {
		t.Errorf("priming pair roles = %s/%s, want user/model", history[0].Role, history[1].Role)
	}
}

func TestStoreGetOrCreate_ReturnsExistingSession(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)
	defer store.Close()

	first := store.GetOrCreate("room-1")
	second := store.GetOrCreate("room-1")

	if first != second {
		t.Error("expected the same session object on repeat lookup")
	}

	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStoreGetOrCreate_SeedIsCopiedPerSession(t *testing.T) {
	seed := testSeed()
	store := NewStore(seed, time.Hour, time.Hour)
	defer store.Close()

	s1 := store.GetOrCreate("room-1")
	s2 := store.GetOrCreate("room-2")

	s1.mu.Lock()
	s1.history = append(s1.history, llm.Message{Role: llm.RoleUser, Content: "hey"})
	s1.mu.Unlock()

	if len(s2.History()) != 2 {
		t.Error("mutating one session's history leaked into another")
	}

	if len(seed) != 2 {
		t.Error("mutating a session's history modified the shared seed")
	}
}

func TestStoreGetOrCreate_IdempotentUnderRace(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)
	defer store.Close()

	const goroutines = 50

	sessions := make([]*Session, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sessions[idx] = store.GetOrCreate("room-1")
		}(i)
	}
	wg.Wait()

	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (single session despite %d concurrent first turns)", store.Len(), goroutines)
	}

	for i := 1; i < goroutines; i++ {
		if sessions[i] != sessions[0] {
			t.Fatal("concurrent first turns observed divergent session objects")
		}
	}
}

func TestStoreGetOrCreate_ConcurrentDistinctSessions(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)
	defer store.Close()

	const goroutines = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			id := fmt.Sprintf("room-%d", idx)
			session := store.GetOrCreate(id)

			session.mu.Lock()
			session.history = append(session.history, llm.Message{Role: llm.RoleUser, Content: id})
			session.mu.Unlock()
		}(i)
	}
	wg.Wait()

	if store.Len() != goroutines {
		t.Fatalf("Len() = %d, want %d", store.Len(), goroutines)
	}

	// each session saw exactly its own turn, no cross-contamination
	for i := 0; i < goroutines; i++ {
		id := fmt.Sprintf("room-%d", i)

		session, exists := store.Get(id)
		if !exists {
			t.Fatalf("session %s missing", id)
		}

		history := session.History()
		if len(history) != 3 {
			t.Fatalf("session %s history length = %d, want 3", id, len(history))
		}

		if history[2].Content != id {
			t.Errorf("session %s contains turn %q from another session", id, history[2].Content)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)
	defer store.Close()

	store.GetOrCreate("room-1")
	store.Delete("room-1")

	if _, exists := store.Get("room-1"); exists {
		t.Error("expected session to be removed")
	}
}

func TestStoreCleanup_EvictsIdleSessions(t *testing.T) {
	store := NewStore(testSeed(), 20*time.Millisecond, 10*time.Millisecond)
	defer store.Close()

	store.GetOrCreate("room-1")

	// wait past TTL plus at least one cleanup sweep
	deadline := time.Now().Add(2 * time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if store.Len() != 0 {
		t.Error("expected idle session to be evicted")
	}
}

func TestStoreClose_Idempotent(t *testing.T) {
	store := NewStore(testSeed(), time.Hour, time.Hour)

	store.Close()
	store.Close() // must not panic
}
