package usecase

import (
	"context"
	"fmt"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

type CreateProjectRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Timeline     string   `json:"timeline"`
	ClientId     string   `json:"clientId"`
	ManagerId    string   `json:"managerId"`
	DesignerIds  []string `json:"designerIds"`
}

type UpdateProjectRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Requirements *string   `json:"requirements"`
	Timeline     *string   `json:"timeline"`
	Status       *string   `json:"status"`
	DesignerIds  *[]string `json:"designerIds"`
}

type ProjectUsecase interface {
	Index(ctx context.Context, filter entity.ProjectFilter) ([]entity.Project, error)
	Get(ctx context.Context, projectId string) (entity.Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (entity.Project, error)
	Update(ctx context.Context, projectId string, req UpdateProjectRequest) (entity.Project, error)
	Delete(ctx context.Context, projectId string) error
}

type projectUsecase struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	chatUc      ChatUsecase
	updateUc    ProjectUpdateUsecase
	dispatcher  *Dispatcher
}

func NewProjectUsecase(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, chatUc ChatUsecase, updateUc ProjectUpdateUsecase, dispatcher *Dispatcher) ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		chatUc:      chatUc,
		updateUc:    updateUc,
		dispatcher:  dispatcher,
	}
}

func (u *projectUsecase) Index(ctx context.Context, filter entity.ProjectFilter) ([]entity.Project, error) {
	return u.projectRepo.Index(ctx, filter)
}

func (u *projectUsecase) Get(ctx context.Context, projectId string) (entity.Project, error) {
	if projectId == "" {
		return entity.Project{}, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	return u.projectRepo.Get(ctx, projectId)
}

func (u *projectUsecase) Create(ctx context.Context, req CreateProjectRequest) (entity.Project, error) {
	if req.Name == "" || req.Description == "" || req.Requirements == "" || req.Timeline == "" ||
		req.ClientId == "" || req.ManagerId == "" {
		return entity.Project{}, fmt.Errorf("%w: name, description, requirements, timeline, clientId and managerId are required", ErrValidation)
	}

	return u.projectRepo.Create(ctx, entity.Project{
		Name:         req.Name,
		Description:  req.Description,
		Requirements: req.Requirements,
		Timeline:     req.Timeline,
		Status:       entity.ProjectStatusPlanning,
		ClientId:     req.ClientId,
		ManagerId:    req.ManagerId,
		DesignerIds:  req.DesignerIds,
	})
}

func (u *projectUsecase) Update(ctx context.Context, projectId string, req UpdateProjectRequest) (entity.Project, error) {
	if projectId == "" {
		return entity.Project{}, fmt.Errorf("%w: project id is required", ErrValidation)
	}

	project, err := u.projectRepo.Get(ctx, projectId)
	if err != nil {
		return entity.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Requirements != nil {
		project.Requirements = *req.Requirements
	}
	if req.Timeline != nil {
		project.Timeline = *req.Timeline
	}
	if req.Status != nil {
		switch *req.Status {
		case entity.ProjectStatusPlanning, entity.ProjectStatusInProgress, entity.ProjectStatusReview, entity.ProjectStatusCompleted:
			project.Status = *req.Status
		default:
			return entity.Project{}, fmt.Errorf("%w: unknown project status %q", ErrValidation, *req.Status)
		}
	}
	if req.DesignerIds != nil {
		project.DesignerIds = *req.DesignerIds
	}

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return entity.Project{}, err
	}
	return project, nil
}

// Delete removes the project and, best effort, its tasks, chat room and
// update timeline.
func (u *projectUsecase) Delete(ctx context.Context, projectId string) error {
	if projectId == "" {
		return fmt.Errorf("%w: project id is required", ErrValidation)
	}

	if err := u.projectRepo.Delete(ctx, projectId); err != nil {
		return err
	}

	u.dispatcher.Go("project cascade", func() error {
		cascadeCtx := context.Background()
		if _, err := u.taskRepo.DeleteByProject(cascadeCtx, projectId); err != nil {
			return err
		}
		if _, err := u.updateUc.DeleteByProject(cascadeCtx, projectId); err != nil {
			return err
		}
		_, err := u.chatUc.DeleteByProject(cascadeCtx, projectId)
		return err
	})
	return nil
}
