package usecase

import (
	"context"
	"fmt"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

type PostChatMessageRequest struct {
	UserId      string `json:"userId"`
	UserName    string `json:"userName"`
	UserRole    string `json:"userRole"`
	Message     string `json:"message"`
	MessageType string `json:"messageType"`
	FileUrl     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	FileType    string `json:"fileType"`
}

type ChatUsecase interface {
	List(ctx context.Context, projectId string) ([]entity.ChatMessage, error)
	Post(ctx context.Context, projectId string, req PostChatMessageRequest) (entity.ChatMessage, error)
	DeleteByProject(ctx context.Context, projectId string) (int64, error)
}

type chatUsecase struct {
	store *repository.LayeredChatStore
}

func NewChatUsecase(store *repository.LayeredChatStore) ChatUsecase {
	return &chatUsecase{store: store}
}

func (u *chatUsecase) List(ctx context.Context, projectId string) ([]entity.ChatMessage, error) {
	if projectId == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrValidation)
	}
	return u.store.ListByProject(ctx, projectId)
}

func (u *chatUsecase) Post(ctx context.Context, projectId string, req PostChatMessageRequest) (entity.ChatMessage, error) {
	if projectId == "" {
		return entity.ChatMessage{}, fmt.Errorf("%w: projectId is required", ErrValidation)
	}
	if req.UserId == "" || req.UserName == "" || req.UserRole == "" || req.Message == "" {
		return entity.ChatMessage{}, fmt.Errorf("%w: userId, userName, userRole and message are required", ErrValidation)
	}

	return u.store.Create(ctx, entity.ChatMessage{
		ProjectId:   projectId,
		UserId:      req.UserId,
		UserName:    req.UserName,
		UserRole:    req.UserRole,
		Message:     req.Message,
		MessageType: req.MessageType,
		FileUrl:     req.FileUrl,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
	})
}

func (u *chatUsecase) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	if projectId == "" {
		return 0, fmt.Errorf("%w: projectId is required", ErrValidation)
	}
	return u.store.DeleteByProject(ctx, projectId)
}
