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

var ErrNotificationNotFound = errors.New("notification not found")

// ListLimit caps how many notifications the list endpoint returns. Older
// entries stay in the collection but are unreachable through List.
const ListLimit = 50

type NotificationRepository interface {
	ListByUser(ctx context.Context, userId string) ([]entity.Notification, error)
	Create(ctx context.Context, notification entity.Notification) (entity.Notification, error)
	SetRead(ctx context.Context, notificationId string, isRead bool) error
	MarkAllRead(ctx context.Context, userId string) (int64, error)
	Delete(ctx context.Context, notificationId string) error
}

type notificationRepository struct {
	db *mongo.Database
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) collection() *mongo.Collection {
	return r.db.Collection("notifications")
}

func (r *notificationRepository) ListByUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(ListLimit)

	cursor, err := r.collection().Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification entity.Notification) (entity.Notification, error) {
	notification.Id = uuid.New().String()
	notification.IsRead = false
	notification.CreatedAt = time.Now().UTC()
	notification.UpdatedAt = nil

	if _, err := r.collection().InsertOne(ctx, notification); err != nil {
		return entity.Notification{}, err
	}
	return notification, nil
}

func (r *notificationRepository) SetRead(ctx context.Context, notificationId string, isRead bool) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"isRead":    isRead,
			"updatedAt": now,
		},
	}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": notificationId}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	now := time.Now().UTC()
	filter := bson.M{"userId": userId, "isRead": false}
	update := bson.M{
		"$set": bson.M{
			"isRead":    true,
			"updatedAt": now,
		},
	}

	result, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *notificationRepository) Delete(ctx context.Context, notificationId string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": notificationId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
