package models

import (
	"encoding/json"
	"time"
)

type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	RecipientID string     `json:"recipientId"`
	Subject     string     `json:"subject,omitempty"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Sender      *User      `json:"sender,omitempty"`
	Recipient   *User      `json:"recipient,omitempty"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	m.ID = r.string("id")
	m.SenderID = r.string("sender_id", "senderId")
	m.RecipientID = r.string("recipient_id", "recipientId", "receiver_id", "receiverId")
	m.Subject = r.string("subject")
	m.Body = r.string("body", "content")
	m.ReadAt = r.timePtr("read_at", "readAt")
	m.CreatedAt = r.time("inserted_at", "insertedAt", "created_at", "createdAt")
	m.UpdatedAt = r.time("updated_at", "updatedAt")

	// Older payloads carried a boolean flag instead of read_at.
	if m.ReadAt == nil && r.bool("read") {
		readAt := m.CreatedAt
		m.ReadAt = &readAt
	}

	var sender User
	if r.object(&sender, "sender") {
		m.Sender = &sender
	}
	var recipient User
	if r.object(&recipient, "recipient", "receiver") {
		m.Recipient = &recipient
	}
	return nil
}

func (m *Message) Read() bool {
	return m.ReadAt != nil
}

type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	ActionURL string     `json:"actionUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	n.ID = r.string("id")
	n.UserID = r.string("user_id", "userId")
	n.Type = r.string("type")
	n.Title = r.string("title")
	n.Content = r.string("content", "body")
	n.ReadAt = r.timePtr("read_at", "readAt")
	n.ActionURL = r.string("action_url", "actionUrl")
	n.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	n.UpdatedAt = r.time("updated_at", "updatedAt")
	return nil
}
