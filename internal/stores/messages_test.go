package stores

import (
	"context"
	"testing"
)

const messagesPayload = `[
	{"id": "m1", "sender_id": "u2", "receiver_id": "u1", "body": "Bom dia"},
	{"id": "m2", "sender_id": "u2", "receiver_id": "u1", "content": "Treino hoje?", "read": true, "inserted_at": "2025-03-01T08:00:00Z"},
	{"id": "m3", "sender_id": "u1", "receiver_id": "u2", "body": "Sim"},
	{"id": "m4", "sender_id": "u3", "receiver_id": "u1", "body": "Oi", "read_at": "2025-03-02T08:00:00Z"}
]`

func TestUnreadCount(t *testing.T) {
	api := newStubDoer()
	api.respond("GET", "/messages", messagesPayload)

	store := NewMessagesStore(api)
	if _, err := store.FetchMessages(context.Background(), nil); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	// Only m1 is unread and addressed to u1; m2 carries the legacy read
	// flag, m4 has read_at, m3 was sent by u1.
	if got := store.UnreadCount("u1"); got != 1 {
		t.Errorf("unread for u1 = %d, want 1", got)
	}
	if got := store.UnreadCount("u2"); got != 1 {
		t.Errorf("unread for u2 = %d, want 1", got)
	}
}

func TestMarkReadPatchesCache(t *testing.T) {
	api := newStubDoer()
	api.respond("GET", "/messages", messagesPayload)
	api.respond("PUT", "/messages/m1/read", `{"id": "m1", "sender_id": "u2", "receiver_id": "u1", "body": "Bom dia", "read_at": "2025-03-10T09:00:00Z"}`)

	store := NewMessagesStore(api)
	if _, err := store.FetchMessages(context.Background(), nil); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := store.MarkRead(context.Background(), "m1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	if got := store.UnreadCount("u1"); got != 0 {
		t.Errorf("unread after mark read = %d, want 0", got)
	}
	if got := api.callCount("GET", "/messages"); got != 1 {
		t.Errorf("mark read must patch the cache without refetching, got %d fetches", got)
	}
}

func TestConversation(t *testing.T) {
	api := newStubDoer()
	api.respond("GET", "/messages", messagesPayload)

	store := NewMessagesStore(api)
	if _, err := store.FetchMessages(context.Background(), nil); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	conv := store.Conversation("u2")
	if len(conv) != 3 {
		t.Fatalf("expected 3 messages with u2, got %d", len(conv))
	}
	for _, m := range conv {
		if m.SenderID != "u2" && m.RecipientID != "u2" {
			t.Errorf("message %s does not involve u2", m.ID)
		}
	}
}

func TestSendMessageWrapsPayload(t *testing.T) {
	api := newStubDoer()
	api.respond("POST", "/messages", `{"id": "m9", "sender_id": "u1", "receiver_id": "u2", "body": "Fechado"}`)

	store := NewMessagesStore(api)
	created, err := store.SendMessage(context.Background(), MessageInput{RecipientID: "u2", Body: "Fechado"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if created.Body != "Fechado" {
		t.Errorf("unexpected message: %+v", created)
	}

	body := api.lastBody(t, "POST", "/messages")
	if _, ok := body["message"]; !ok {
		t.Error("expected payload wrapped under message key")
	}
}
