package usecase

import (
	"context"
	"fmt"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

type CreateProjectUpdateRequest struct {
	ProjectId   string `json:"projectId"`
	UserId      string `json:"userId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileUrl     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	FileType    string `json:"fileType"`
}

// EditProjectUpdateRequest carries the mutable fields. Nil means "leave
// unchanged"; the author and project of an update never change.
type EditProjectUpdateRequest struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileUrl     *string `json:"fileUrl"`
}

type ProjectUpdateUsecase interface {
	List(ctx context.Context, projectId, userId string) ([]entity.ProjectUpdate, error)
	Get(ctx context.Context, updateId string) (entity.ProjectUpdate, error)
	Create(ctx context.Context, req CreateProjectUpdateRequest) (entity.ProjectUpdate, error)
	Edit(ctx context.Context, updateId string, req EditProjectUpdateRequest) (entity.ProjectUpdate, error)
	Delete(ctx context.Context, updateId string) error
	DeleteByProject(ctx context.Context, projectId string) (int64, error)
}

type projectUpdateUsecase struct {
	updateRepo repository.ProjectUpdateRepository
}

func NewProjectUpdateUsecase(updateRepo repository.ProjectUpdateRepository) ProjectUpdateUsecase {
	return &projectUpdateUsecase{updateRepo: updateRepo}
}

func (u *projectUpdateUsecase) List(ctx context.Context, projectId, userId string) ([]entity.ProjectUpdate, error) {
	return u.updateRepo.List(ctx, projectId, userId)
}

func (u *projectUpdateUsecase) Get(ctx context.Context, updateId string) (entity.ProjectUpdate, error) {
	if updateId == "" {
		return entity.ProjectUpdate{}, fmt.Errorf("%w: update id is required", ErrValidation)
	}
	return u.updateRepo.Get(ctx, updateId)
}

func (u *projectUpdateUsecase) Create(ctx context.Context, req CreateProjectUpdateRequest) (entity.ProjectUpdate, error) {
	if req.ProjectId == "" || req.UserId == "" || req.Type == "" || req.Title == "" {
		return entity.ProjectUpdate{}, fmt.Errorf("%w: projectId, userId, type and title are required", ErrValidation)
	}
	if !entity.ValidProjectUpdateType(req.Type) {
		return entity.ProjectUpdate{}, fmt.Errorf("%w: unknown update type %q", ErrValidation, req.Type)
	}

	return u.updateRepo.Create(ctx, entity.ProjectUpdate{
		ProjectId:   req.ProjectId,
		UserId:      req.UserId,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		FileUrl:     req.FileUrl,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
	})
}

func (u *projectUpdateUsecase) Edit(ctx context.Context, updateId string, req EditProjectUpdateRequest) (entity.ProjectUpdate, error) {
	if updateId == "" {
		return entity.ProjectUpdate{}, fmt.Errorf("%w: update id is required", ErrValidation)
	}

	update, err := u.updateRepo.Get(ctx, updateId)
	if err != nil {
		return entity.ProjectUpdate{}, err
	}

	if req.Type != nil {
		if !entity.ValidProjectUpdateType(*req.Type) {
			return entity.ProjectUpdate{}, fmt.Errorf("%w: unknown update type %q", ErrValidation, *req.Type)
		}
		update.Type = *req.Type
	}
	if req.Title != nil {
		update.Title = *req.Title
	}
	if req.Description != nil {
		update.Description = *req.Description
	}
	if req.FileUrl != nil {
		update.FileUrl = *req.FileUrl
	}

	if err := u.updateRepo.Update(ctx, update); err != nil {
		return entity.ProjectUpdate{}, err
	}
	return update, nil
}

func (u *projectUpdateUsecase) Delete(ctx context.Context, updateId string) error {
	if updateId == "" {
		return fmt.Errorf("%w: update id is required", ErrValidation)
	}
	return u.updateRepo.Delete(ctx, updateId)
}

func (u *projectUpdateUsecase) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	if projectId == "" {
		return 0, fmt.Errorf("%w: projectId is required", ErrValidation)
	}
	return u.updateRepo.DeleteByProject(ctx, projectId)
}
