package repository

import (
	"context"
	"errors"
	"time"

	"designdesk/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Index(ctx context.Context, projectId, assigneeId string) ([]entity.Task, error)
	Get(ctx context.Context, taskId string) (entity.Task, error)
	Create(ctx context.Context, task entity.Task) (entity.Task, error)
	Update(ctx context.Context, task entity.Task) error
	Delete(ctx context.Context, taskId string) error
	DeleteByProject(ctx context.Context, projectId string) (int64, error)
}

type taskRepository struct {
	db *mongo.Database
}

func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) collection() *mongo.Collection {
	return r.db.Collection("tasks")
}

func (r *taskRepository) Index(ctx context.Context, projectId, assigneeId string) ([]entity.Task, error) {
	filter := bson.M{}
	if projectId != "" {
		filter["projectId"] = projectId
	} else if assigneeId != "" {
		filter["assigneeId"] = assigneeId
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var tasks []entity.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Get(ctx context.Context, taskId string) (entity.Task, error) {
	var task entity.Task
	err := r.collection().FindOne(ctx, bson.M{"_id": taskId}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Task{}, ErrTaskNotFound
		}
		return entity.Task{}, err
	}
	return task, nil
}

func (r *taskRepository) Create(ctx context.Context, task entity.Task) (entity.Task, error) {
	now := time.Now().UTC()
	task.Id = uuid.New().String()
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, task); err != nil {
		return entity.Task{}, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task entity.Task) error {
	update := bson.M{
		"$set": bson.M{
			"title":        task.Title,
			"description":  task.Description,
			"assigneeId":   task.AssigneeId,
			"assigneeName": task.AssigneeName,
			"status":       task.Status,
			"priority":     task.Priority,
			"dueDate":      task.DueDate,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": task.Id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, taskId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": taskId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, bson.M{"projectId": projectId})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
