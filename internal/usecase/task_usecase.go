package usecase

import (
	"context"
	"fmt"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

type CreateTaskRequest struct {
	ProjectId     string `json:"projectId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	AssigneeId    string `json:"assigneeId"`
	AssigneeName  string `json:"assigneeName"`
	CreatedBy     string `json:"createdBy"`
	CreatedByName string `json:"createdByName"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	DueDate       string `json:"dueDate"`
}

type TaskUsecase interface {
	Index(ctx context.Context, projectId, assigneeId string) ([]entity.Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (entity.Task, error)
	Update(ctx context.Context, taskId string, req entity.TaskUpdate) (entity.Task, error)
	Delete(ctx context.Context, taskId string) error
}

type taskUsecase struct {
	taskRepo       repository.TaskRepository
	notificationUc NotificationUsecase
	dispatcher     *Dispatcher
}

func NewTaskUsecase(taskRepo repository.TaskRepository, notificationUc NotificationUsecase, dispatcher *Dispatcher) TaskUsecase {
	return &taskUsecase{
		taskRepo:       taskRepo,
		notificationUc: notificationUc,
		dispatcher:     dispatcher,
	}
}

func (u *taskUsecase) Index(ctx context.Context, projectId, assigneeId string) ([]entity.Task, error) {
	return u.taskRepo.Index(ctx, projectId, assigneeId)
}

func (u *taskUsecase) Create(ctx context.Context, req CreateTaskRequest) (entity.Task, error) {
	if req.ProjectId == "" || req.Title == "" || req.AssigneeId == "" || req.CreatedBy == "" {
		return entity.Task{}, fmt.Errorf("%w: projectId, title, assigneeId and createdBy are required", ErrValidation)
	}

	task := entity.Task{
		ProjectId:     req.ProjectId,
		Title:         req.Title,
		Description:   req.Description,
		AssigneeId:    req.AssigneeId,
		AssigneeName:  req.AssigneeName,
		CreatedBy:     req.CreatedBy,
		CreatedByName: req.CreatedByName,
		Status:        req.Status,
		Priority:      req.Priority,
		DueDate:       req.DueDate,
	}
	if task.AssigneeName == "" {
		task.AssigneeName = "Unknown"
	}
	if task.CreatedByName == "" {
		task.CreatedByName = "Unknown"
	}
	if task.Status == "" {
		task.Status = entity.TaskStatusTodo
	}
	switch task.Status {
	case entity.TaskStatusTodo, entity.TaskStatusInProgress, entity.TaskStatusReview, entity.TaskStatusDone:
	default:
		return entity.Task{}, fmt.Errorf("%w: unknown task status %q", ErrValidation, task.Status)
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}

	task, err := u.taskRepo.Create(ctx, task)
	if err != nil {
		return entity.Task{}, err
	}

	u.notifyAssigned(task)
	return task, nil
}

func (u *taskUsecase) Update(ctx context.Context, taskId string, req entity.TaskUpdate) (entity.Task, error) {
	if taskId == "" {
		return entity.Task{}, fmt.Errorf("%w: taskId is required", ErrValidation)
	}

	task, err := u.taskRepo.Get(ctx, taskId)
	if err != nil {
		return entity.Task{}, err
	}
	previousStatus := task.Status
	previousAssignee := task.AssigneeId

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeId != nil {
		task.AssigneeId = *req.AssigneeId
	}
	if req.AssigneeName != nil {
		task.AssigneeName = *req.AssigneeName
	}
	if req.Status != nil {
		switch *req.Status {
		case entity.TaskStatusTodo, entity.TaskStatusInProgress, entity.TaskStatusReview, entity.TaskStatusDone:
			task.Status = *req.Status
		default:
			return entity.Task{}, fmt.Errorf("%w: unknown task status %q", ErrValidation, *req.Status)
		}
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return entity.Task{}, err
	}

	if task.AssigneeId != previousAssignee {
		u.notifyAssigned(task)
	}
	if task.Status != previousStatus {
		switch task.Status {
		case entity.TaskStatusReview:
			u.notifyStatus(task, entity.NotificationTaskReview, "Task Ready for Review",
				fmt.Sprintf("%q has been moved to review", task.Title))
		case entity.TaskStatusDone:
			u.notifyStatus(task, entity.NotificationTaskCompleted, "Task Completed",
				fmt.Sprintf("%q has been completed", task.Title))
		}
	}

	return task, nil
}

func (u *taskUsecase) Delete(ctx context.Context, taskId string) error {
	if taskId == "" {
		return fmt.Errorf("%w: taskId is required", ErrValidation)
	}
	return u.taskRepo.Delete(ctx, taskId)
}

func (u *taskUsecase) notifyAssigned(task entity.Task) {
	u.dispatcher.Go("task assigned notification", func() error {
		_, err := u.notificationUc.Create(context.Background(), CreateNotificationRequest{
			Type:       entity.NotificationTaskAssigned,
			Title:      "New Task Assigned",
			Message:    fmt.Sprintf("You have been assigned a new task: %q", task.Title),
			UserId:     task.AssigneeId,
			ProjectId:  task.ProjectId,
			TaskId:     task.Id,
			SenderId:   task.CreatedBy,
			SenderName: task.CreatedByName,
		})
		return err
	})
}

// notifyStatus tells the task creator about a status transition made by the
// assignee.
func (u *taskUsecase) notifyStatus(task entity.Task, notificationType, title, message string) {
	u.dispatcher.Go("task status notification", func() error {
		_, err := u.notificationUc.Create(context.Background(), CreateNotificationRequest{
			Type:       notificationType,
			Title:      title,
			Message:    message,
			UserId:     task.CreatedBy,
			ProjectId:  task.ProjectId,
			TaskId:     task.Id,
			SenderId:   task.AssigneeId,
			SenderName: task.AssigneeName,
		})
		return err
	})
}
