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

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Index(ctx context.Context, filter entity.ProjectFilter) ([]entity.Project, error)
	Get(ctx context.Context, projectId string) (entity.Project, error)
	Create(ctx context.Context, project entity.Project) (entity.Project, error)
	Update(ctx context.Context, project entity.Project) error
	Delete(ctx context.Context, projectId string) error
}

type projectRepository struct {
	db *mongo.Database
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) collection() *mongo.Collection {
	return r.db.Collection("projects")
}

func (r *projectRepository) Index(ctx context.Context, filter entity.ProjectFilter) ([]entity.Project, error) {
	bsonFilter := bson.M{}

	if filter.UserId != "" {
		switch filter.UserRole {
		case entity.RoleClient:
			bsonFilter["clientId"] = filter.UserId
		case entity.RoleProjectManager:
			bsonFilter["managerId"] = filter.UserId
		case entity.RoleDesigner:
			bsonFilter["designerIds"] = filter.UserId
		}
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		bsonFilter["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}

	var projects []entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Get(ctx context.Context, projectId string) (entity.Project, error) {
	var project entity.Project
	err := r.collection().FindOne(ctx, bson.M{"_id": projectId}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Project{}, ErrProjectNotFound
		}
		return entity.Project{}, err
	}
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project entity.Project) (entity.Project, error) {
	now := time.Now().UTC()
	project.Id = uuid.New().String()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.DesignerIds == nil {
		project.DesignerIds = []string{}
	}

	if _, err := r.collection().InsertOne(ctx, project); err != nil {
		return entity.Project{}, err
	}
	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, project entity.Project) error {
	update := bson.M{
		"$set": bson.M{
			"name":         project.Name,
			"description":  project.Description,
			"requirements": project.Requirements,
			"timeline":     project.Timeline,
			"status":       project.Status,
			"designerIds":  project.DesignerIds,
			"updatedAt":    time.Now().UTC(),
		},
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": project.Id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, projectId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": projectId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
