package stores

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

type MessageInput struct {
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
}

type MessagesStore struct {
	mu            sync.RWMutex
	api           Doer
	messages      []models.Message
	notifications []models.Notification
	meta          *models.PaginationMeta
	loading       bool
	err           error
}

func NewMessagesStore(api Doer) *MessagesStore {
	return &MessagesStore{api: api}
}

func (s *MessagesStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *MessagesStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *MessagesStore) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Message(nil), s.messages...)
}

func (s *MessagesStore) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

func (s *MessagesStore) FetchMessages(ctx context.Context, filters url.Values) ([]models.Message, error) {
	s.begin()

	var messages []models.Message
	meta, err := s.api.GetPage(ctx, "/messages", filters, &messages)
	if err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.messages = messages
	s.meta = meta
	s.loading = false
	s.mu.Unlock()
	return append([]models.Message(nil), messages...), nil
}

// Meta is the pagination meta of the latest FetchMessages, nil before the
// first fetch or when the server sent none.
func (s *MessagesStore) Meta() *models.PaginationMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil
	}
	meta := *s.meta
	return &meta
}

func (s *MessagesStore) SendMessage(ctx context.Context, input MessageInput) (*models.Message, error) {
	s.begin()

	var created models.Message
	if err := s.api.Post(ctx, "/messages", map[string]any{"message": input}, &created); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.messages = append(s.messages, created)
	s.loading = false
	s.mu.Unlock()
	result := created
	return &result, nil
}

// MarkRead flags a single message as read and patches the cached copy so
// the unread badge drops without a refetch.
func (s *MessagesStore) MarkRead(ctx context.Context, id string) error {
	var updated models.Message
	if err := s.api.Put(ctx, "/messages/"+id+"/read", nil, &updated); err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *MessagesStore) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	s.begin()

	var notifications []models.Notification
	if err := s.api.Get(ctx, "/notifications", nil, &notifications); err != nil {
		s.finish(err)
		return nil, err
	}

	s.mu.Lock()
	s.notifications = notifications
	s.loading = false
	s.mu.Unlock()
	return append([]models.Notification(nil), notifications...), nil
}

// Sorted returns the cached messages newest first.
func (s *MessagesStore) Sorted() []models.Message {
	s.mu.RLock()
	sorted := append([]models.Message(nil), s.messages...)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// UnreadCount counts cached messages addressed to userID that have not
// been read yet.
func (s *MessagesStore) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, m := range s.messages {
		if m.RecipientID == userID && !m.Read() {
			count++
		}
	}
	return count
}

// Conversation returns the cached messages exchanged with the given user,
// in the order the server returned them.
func (s *MessagesStore) Conversation(userID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var conv []models.Message
	for _, m := range s.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			conv = append(conv, m)
		}
	}
	return conv
}

func (s *MessagesStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *MessagesStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()
}
