package usecase

import (
	"context"
	"fmt"

	"designdesk/infrastructure/ws"
	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

const previewLimit = 50

type MessageUsecase interface {
	Send(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error)
	Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error)
	DeleteConversation(ctx context.Context, user1, user2 string) (int64, error)
	UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error)
	MarkRead(ctx context.Context, currentUserId, otherUserId string) (int64, error)
}

type messageUsecase struct {
	messageRepo    repository.MessageRepository
	notificationUc NotificationUsecase
	pusher         EventPusher
	dispatcher     *Dispatcher
}

func NewMessageUsecase(messageRepo repository.MessageRepository, notificationUc NotificationUsecase, pusher EventPusher, dispatcher *Dispatcher) MessageUsecase {
	return &messageUsecase{
		messageRepo:    messageRepo,
		notificationUc: notificationUc,
		pusher:         pusher,
		dispatcher:     dispatcher,
	}
}

// Send persists the message, then fires the receiver-side effects (message
// notification, push event) off the request path. Delivery of the message is
// the guarantee; the side effects are best effort and their failures are only
// logged.
func (u *messageUsecase) Send(ctx context.Context, req entity.SendMessageRequest) (entity.Message, error) {
	if req.SenderId == "" || req.SenderName == "" || req.ReceiverId == "" || req.Message == "" {
		return entity.Message{}, fmt.Errorf("%w: senderId, senderName, receiverId and message are required", ErrValidation)
	}

	message, err := u.messageRepo.Create(ctx, entity.Message{
		SenderId:    req.SenderId,
		SenderName:  req.SenderName,
		ReceiverId:  req.ReceiverId,
		Message:     req.Message,
		MessageType: req.MessageType,
		FileUrl:     req.FileUrl,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
	})
	if err != nil {
		return entity.Message{}, err
	}

	u.dispatcher.Go("message notification", func() error {
		// Detached from the request context: the sender's response must not
		// cancel the receiver's notification.
		_, err := u.notificationUc.Create(context.Background(), CreateNotificationRequest{
			Type:       entity.NotificationMessage,
			Title:      "New message from " + message.SenderName,
			Message:    previewText(message.Message),
			UserId:     message.ReceiverId,
			SenderId:   message.SenderId,
			SenderName: message.SenderName,
		})
		return err
	})

	if u.pusher != nil {
		u.dispatcher.Go("message push", func() error {
			u.pusher.SendToUser(message.ReceiverId, ws.Encode(ws.EventMessageReceived, message))
			return nil
		})
	}

	return message, nil
}

func (u *messageUsecase) Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error) {
	if user1 == "" || user2 == "" {
		return nil, fmt.Errorf("%w: both user1 and user2 parameters are required", ErrValidation)
	}
	return u.messageRepo.Conversation(ctx, user1, user2)
}

func (u *messageUsecase) DeleteConversation(ctx context.Context, user1, user2 string) (int64, error) {
	if user1 == "" || user2 == "" {
		return 0, fmt.Errorf("%w: both user1 and user2 parameters are required", ErrValidation)
	}
	return u.messageRepo.DeleteConversation(ctx, user1, user2)
}

func (u *messageUsecase) UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	return u.messageRepo.UnreadCounts(ctx, userId)
}

func (u *messageUsecase) MarkRead(ctx context.Context, currentUserId, otherUserId string) (int64, error) {
	if currentUserId == "" || otherUserId == "" {
		return 0, fmt.Errorf("%w: both currentUserId and otherUserId are required", ErrValidation)
	}
	return u.messageRepo.MarkConversationRead(ctx, currentUserId, otherUserId)
}

// previewText shortens a message body for its notification, appending an
// ellipsis when something was cut.
func previewText(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}
