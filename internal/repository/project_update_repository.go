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

var ErrProjectUpdateNotFound = errors.New("project update not found")

type ProjectUpdateRepository interface {
	List(ctx context.Context, projectId, userId string) ([]entity.ProjectUpdate, error)
	Get(ctx context.Context, updateId string) (entity.ProjectUpdate, error)
	Create(ctx context.Context, update entity.ProjectUpdate) (entity.ProjectUpdate, error)
	Update(ctx context.Context, update entity.ProjectUpdate) error
	Delete(ctx context.Context, updateId string) error
	DeleteByProject(ctx context.Context, projectId string) (int64, error)
}

type projectUpdateRepository struct {
	db *mongo.Database
}

func NewProjectUpdateRepository(db *mongo.Database) ProjectUpdateRepository {
	return &projectUpdateRepository{db: db}
}

func (r *projectUpdateRepository) collection() *mongo.Collection {
	return r.db.Collection("project_updates")
}

// List returns updates newest first, optionally narrowed to one project or one
// author.
func (r *projectUpdateRepository) List(ctx context.Context, projectId, userId string) ([]entity.ProjectUpdate, error) {
	filter := bson.M{}
	if projectId != "" {
		filter["projectId"] = projectId
	} else if userId != "" {
		filter["userId"] = userId
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var updates []entity.ProjectUpdate
	if err := cursor.All(ctx, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *projectUpdateRepository) Get(ctx context.Context, updateId string) (entity.ProjectUpdate, error) {
	var update entity.ProjectUpdate
	err := r.collection().FindOne(ctx, bson.M{"_id": updateId}).Decode(&update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.ProjectUpdate{}, ErrProjectUpdateNotFound
		}
		return entity.ProjectUpdate{}, err
	}
	return update, nil
}

func (r *projectUpdateRepository) Create(ctx context.Context, update entity.ProjectUpdate) (entity.ProjectUpdate, error) {
	update.Id = uuid.New().String()
	update.CreatedAt = time.Now().UTC()
	update.UpdatedAt = nil

	if _, err := r.collection().InsertOne(ctx, update); err != nil {
		return entity.ProjectUpdate{}, err
	}
	return update, nil
}

func (r *projectUpdateRepository) Update(ctx context.Context, update entity.ProjectUpdate) error {
	now := time.Now().UTC()
	update.UpdatedAt = &now

	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": update.Id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProjectUpdateNotFound
	}
	return nil
}

func (r *projectUpdateRepository) Delete(ctx context.Context, updateId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": updateId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectUpdateNotFound
	}
	return nil
}

func (r *projectUpdateRepository) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, bson.M{"projectId": projectId})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
