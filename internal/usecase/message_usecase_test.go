package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"designdesk/internal/entity"
)

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []entity.Message
	failNext error
}

func (f *fakeMessageRepo) Create(ctx context.Context, message entity.Message) (entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return entity.Message{}, err
	}
	now := time.Now().UTC().Add(time.Duration(len(f.messages)) * time.Millisecond)
	message.Id = fmt.Sprintf("msg-%d", len(f.messages)+1)
	message.Timestamp = now
	message.CreatedAt = now
	message.IsRead = false
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeMessageRepo) Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Message
	for _, m := range f.messages {
		if (m.SenderId == user1 && m.ReceiverId == user2) || (m.SenderId == user2 && m.ReceiverId == user1) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) DeleteConversation(ctx context.Context, user1, user2 string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []entity.Message
	var deleted int64
	for _, m := range f.messages {
		if (m.SenderId == user1 && m.ReceiverId == user2) || (m.SenderId == user2 && m.ReceiverId == user1) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	return deleted, nil
}

func (f *fakeMessageRepo) UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bySender := make(map[string]*entity.UnreadSummary)
	var order []string
	for _, m := range f.messages {
		if m.ReceiverId != userId || m.IsRead {
			continue
		}
		summary, ok := bySender[m.SenderId]
		if !ok {
			summary = &entity.UnreadSummary{UserId: m.SenderId, SenderName: m.SenderName}
			bySender[m.SenderId] = summary
			order = append(order, m.SenderId)
		}
		summary.UnreadCount++
		if m.Timestamp.After(summary.LastMessageTimestamp) {
			summary.LastMessageTimestamp = m.Timestamp
		}
	}
	var out []entity.UnreadSummary
	for _, senderId := range order {
		out = append(out, *bySender[senderId])
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkConversationRead(ctx context.Context, currentUserId, otherUserId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	var marked int64
	for i := range f.messages {
		m := &f.messages[i]
		if m.SenderId == otherUserId && m.ReceiverId == currentUserId && !m.IsRead {
			m.IsRead = true
			m.ReadAt = &now
			marked++
		}
	}
	return marked, nil
}

type fakeNotificationUsecase struct {
	mu      sync.Mutex
	created []CreateNotificationRequest
	fail    error
}

func (f *fakeNotificationUsecase) List(ctx context.Context, userId string) ([]entity.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationUsecase) Create(ctx context.Context, req CreateNotificationRequest) (entity.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return entity.Notification{}, f.fail
	}
	f.created = append(f.created, req)
	return entity.Notification{Id: "n-1", Type: req.Type, UserId: req.UserId}, nil
}

func (f *fakeNotificationUsecase) SetRead(ctx context.Context, id string, isRead bool) error {
	return nil
}

func (f *fakeNotificationUsecase) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationUsecase) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeNotificationUsecase) all() []CreateNotificationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]CreateNotificationRequest, len(f.created))
	copy(out, f.created)
	return out
}

type fakePusher struct {
	mu    sync.Mutex
	sends map[string][][]byte
}

func newFakePusher() *fakePusher {
	return &fakePusher{sends: make(map[string][][]byte)}
}

func (f *fakePusher) SendToUser(userId string, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends[userId] = append(f.sends[userId], payload)
}

func (f *fakePusher) count(userId string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends[userId])
}

func newMessageFixture() (*fakeMessageRepo, *fakeNotificationUsecase, *fakePusher, *Dispatcher, MessageUsecase) {
	repo := &fakeMessageRepo{}
	notifications := &fakeNotificationUsecase{}
	pusher := newFakePusher()
	dispatcher := NewDispatcher()
	uc := NewMessageUsecase(repo, notifications, pusher, dispatcher)
	return repo, notifications, pusher, dispatcher, uc
}

func TestSendRequiresAllFields(t *testing.T) {
	_, _, _, _, uc := newMessageFixture()

	cases := []entity.SendMessageRequest{
		{SenderName: "Alice", ReceiverId: "u2", Message: "hi"},
		{SenderId: "u1", ReceiverId: "u2", Message: "hi"},
		{SenderId: "u1", SenderName: "Alice", Message: "hi"},
		{SenderId: "u1", SenderName: "Alice", ReceiverId: "u2"},
	}
	for i, req := range cases {
		if _, err := uc.Send(context.Background(), req); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestSendCreatesMessageNotification(t *testing.T) {
	_, notifications, pusher, dispatcher, uc := newMessageFixture()

	message, err := uc.Send(context.Background(), entity.SendMessageRequest{
		SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	dispatcher.Wait()

	if message.IsRead {
		t.Error("new message must start unread")
	}
	created := notifications.all()
	if len(created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(created))
	}
	n := created[0]
	if n.Type != entity.NotificationMessage {
		t.Errorf("notification type = %q, want %q", n.Type, entity.NotificationMessage)
	}
	if n.UserId != "u2" {
		t.Errorf("notification recipient = %q, want u2", n.UserId)
	}
	if n.Message != "Hello" {
		t.Errorf("notification preview = %q, want Hello", n.Message)
	}
	if !strings.Contains(n.Title, "Alice") {
		t.Errorf("notification title %q should carry the sender name", n.Title)
	}
	if pusher.count("u2") != 1 {
		t.Errorf("expected 1 push event for u2, got %d", pusher.count("u2"))
	}
}

func TestSendTruncatesLongPreview(t *testing.T) {
	_, notifications, _, dispatcher, uc := newMessageFixture()

	long := strings.Repeat("a", 80)
	if _, err := uc.Send(context.Background(), entity.SendMessageRequest{
		SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: long,
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	dispatcher.Wait()

	created := notifications.all()
	if len(created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(created))
	}
	want := strings.Repeat("a", 50) + "..."
	if created[0].Message != want {
		t.Errorf("preview = %q, want %q", created[0].Message, want)
	}
}

func TestSendSurvivesNotificationFailure(t *testing.T) {
	repo, notifications, _, dispatcher, uc := newMessageFixture()
	notifications.fail = errors.New("notification store down")

	message, err := uc.Send(context.Background(), entity.SendMessageRequest{
		SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Send must not fail when the notification side effect fails: %v", err)
	}
	dispatcher.Wait()

	if message.Id == "" {
		t.Error("message was not persisted")
	}
	if len(repo.messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(repo.messages))
	}
}

func TestSendSelfMessageAllowed(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()

	message, err := uc.Send(context.Background(), entity.SendMessageRequest{
		SenderId: "u1", SenderName: "Alice", ReceiverId: "u1", Message: "note to self",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	dispatcher.Wait()
	if message.IsRead {
		t.Error("self message still starts unread")
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := uc.Send(ctx, entity.SendMessageRequest{
			SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "hi",
		}); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
	dispatcher.Wait()

	marked, err := uc.MarkRead(ctx, "u2", "u1")
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if marked != 3 {
		t.Errorf("first call marked %d, want 3", marked)
	}

	marked, err = uc.MarkRead(ctx, "u2", "u1")
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if marked != 0 {
		t.Errorf("second call marked %d, want 0", marked)
	}
}

func TestMarkReadIsDirectional(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()
	ctx := context.Background()

	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "to u2"})
	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u2", SenderName: "Bob", ReceiverId: "u1", Message: "to u1"})
	dispatcher.Wait()

	// u2 marking u1's messages must not touch u1's unread mail from u2.
	if _, err := uc.MarkRead(ctx, "u2", "u1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	counts, err := uc.UnreadCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("UnreadCounts: %v", err)
	}
	if len(counts) != 1 || counts[0].UserId != "u2" {
		t.Fatalf("u1 should still have unread mail from u2, got %+v", counts)
	}
}

func TestUnreadCountsAfterSendAndMarkRead(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()
	ctx := context.Background()

	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "Hello"})
	dispatcher.Wait()

	counts, err := uc.UnreadCounts(ctx, "u2")
	if err != nil {
		t.Fatalf("UnreadCounts: %v", err)
	}
	if len(counts) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(counts))
	}
	if counts[0].UserId != "u1" || counts[0].UnreadCount != 1 || counts[0].SenderName != "Alice" {
		t.Errorf("unexpected summary %+v", counts[0])
	}

	if _, err := uc.MarkRead(ctx, "u2", "u1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	counts, err = uc.UnreadCounts(ctx, "u2")
	if err != nil {
		t.Fatalf("UnreadCounts: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected empty summary after mark-read, got %+v", counts)
	}
}

func TestConversationSymmetry(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()
	ctx := context.Background()

	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "one"})
	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u2", SenderName: "Bob", ReceiverId: "u1", Message: "two"})
	dispatcher.Wait()

	ab, err := uc.Conversation(ctx, "u1", "u2")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	ba, err := uc.Conversation(ctx, "u2", "u1")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(ab) != 2 || len(ba) != 2 {
		t.Fatalf("expected both directions to return 2 messages, got %d and %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].Id != ba[i].Id {
			t.Errorf("conversation order differs at %d: %s vs %s", i, ab[i].Id, ba[i].Id)
		}
	}
}

func TestDeleteConversationRemovesBothDirections(t *testing.T) {
	_, _, _, dispatcher, uc := newMessageFixture()
	ctx := context.Background()

	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u1", SenderName: "Alice", ReceiverId: "u2", Message: "one"})
	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u2", SenderName: "Bob", ReceiverId: "u1", Message: "two"})
	uc.Send(ctx, entity.SendMessageRequest{SenderId: "u1", SenderName: "Alice", ReceiverId: "u3", Message: "other"})
	dispatcher.Wait()

	deleted, err := uc.DeleteConversation(ctx, "u1", "u2")
	if err != nil {
		t.Fatalf("DeleteConversation: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted %d, want 2", deleted)
	}

	remaining, err := uc.Conversation(ctx, "u1", "u2")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("conversation should be empty after delete, got %d", len(remaining))
	}

	other, err := uc.Conversation(ctx, "u1", "u3")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("unrelated conversation was touched, got %d messages", len(other))
	}
}

func TestPreviewText(t *testing.T) {
	if got := previewText("short"); got != "short" {
		t.Errorf("previewText(short) = %q", got)
	}
	exact := strings.Repeat("x", 50)
	if got := previewText(exact); got != exact {
		t.Errorf("a 50-char message must not be truncated, got %q", got)
	}
	if got := previewText(exact + "y"); got != exact+"..." {
		t.Errorf("51-char message should truncate to 50 plus ellipsis, got %q", got)
	}
}
