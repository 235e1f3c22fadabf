package usecase

import (
	"context"
	"fmt"

	"designdesk/infrastructure/ws"
	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

// EventPusher is the slice of the hub the usecases need: deliver a payload to
// one recipient, best effort.
type EventPusher interface {
	SendToUser(userId string, payload []byte)
}

type CreateNotificationRequest struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	UserId     string `json:"userId"`
	ProjectId  string `json:"projectId"`
	TaskId     string `json:"taskId"`
	SenderId   string `json:"senderId"`
	SenderName string `json:"senderName"`
}

type NotificationUsecase interface {
	List(ctx context.Context, userId string) ([]entity.Notification, error)
	Create(ctx context.Context, req CreateNotificationRequest) (entity.Notification, error)
	SetRead(ctx context.Context, notificationId string, isRead bool) error
	MarkAllRead(ctx context.Context, userId string) (int64, error)
	Delete(ctx context.Context, notificationId string) error
}

type notificationUsecase struct {
	notificationRepo repository.NotificationRepository
	pusher           EventPusher
}

func NewNotificationUsecase(notificationRepo repository.NotificationRepository, pusher EventPusher) NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func (u *notificationUsecase) List(ctx context.Context, userId string) ([]entity.Notification, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	return u.notificationRepo.ListByUser(ctx, userId)
}

func (u *notificationUsecase) Create(ctx context.Context, req CreateNotificationRequest) (entity.Notification, error) {
	if req.Type == "" || req.Title == "" || req.Message == "" || req.UserId == "" {
		return entity.Notification{}, fmt.Errorf("%w: type, title, message and userId are required", ErrValidation)
	}
	if !entity.ValidNotificationType(req.Type) {
		return entity.Notification{}, fmt.Errorf("%w: unknown notification type %q", ErrValidation, req.Type)
	}

	notification, err := u.notificationRepo.Create(ctx, entity.Notification{
		Type:       req.Type,
		Title:      req.Title,
		Message:    req.Message,
		UserId:     req.UserId,
		ProjectId:  req.ProjectId,
		TaskId:     req.TaskId,
		SenderId:   req.SenderId,
		SenderName: req.SenderName,
	})
	if err != nil {
		return entity.Notification{}, err
	}

	if u.pusher != nil {
		u.pusher.SendToUser(notification.UserId, ws.Encode(ws.EventNotificationCreated, notification))
	}
	return notification, nil
}

func (u *notificationUsecase) SetRead(ctx context.Context, notificationId string, isRead bool) error {
	if notificationId == "" {
		return fmt.Errorf("%w: notification id is required", ErrValidation)
	}
	return u.notificationRepo.SetRead(ctx, notificationId, isRead)
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	if userId == "" {
		return 0, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	return u.notificationRepo.MarkAllRead(ctx, userId)
}

func (u *notificationUsecase) Delete(ctx context.Context, notificationId string) error {
	if notificationId == "" {
		return fmt.Errorf("%w: notification id is required", ErrValidation)
	}
	return u.notificationRepo.Delete(ctx, notificationId)
}
