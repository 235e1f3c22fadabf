package repository

import (
	"context"

	"designdesk/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatRepository interface {
	ListByProject(ctx context.Context, projectId string) ([]entity.ChatMessage, error)
	Create(ctx context.Context, message entity.ChatMessage) error
	DeleteByProject(ctx context.Context, projectId string) (int64, error)
}

type chatRepository struct {
	db *mongo.Database
}

func NewChatRepository(db *mongo.Database) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) collection() *mongo.Collection {
	return r.db.Collection("chat_messages")
}

func (r *chatRepository) ListByProject(ctx context.Context, projectId string) ([]entity.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection().Find(ctx, bson.M{"projectId": projectId}, opts)
	if err != nil {
		return nil, err
	}

	var messages []entity.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) Create(ctx context.Context, message entity.ChatMessage) error {
	_, err := r.collection().InsertOne(ctx, message)
	return err
}

func (r *chatRepository) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, bson.M{"projectId": projectId})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
