package repository

import (
	"context"
	"time"

	"designdesk/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	Create(ctx context.Context, message entity.Message) (entity.Message, error)
	Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error)
	DeleteConversation(ctx context.Context, user1, user2 string) (int64, error)
	UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error)
	MarkConversationRead(ctx context.Context, currentUserId, otherUserId string) (int64, error)
}

type messageRepository struct {
	db *mongo.Database
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) collection() *mongo.Collection {
	return r.db.Collection("individual_messages")
}

func (r *messageRepository) Create(ctx context.Context, message entity.Message) (entity.Message, error) {
	now := time.Now().UTC()
	message.Id = uuid.New().String()
	message.Timestamp = now
	message.CreatedAt = now
	message.IsRead = false
	message.ReadAt = nil

	if _, err := r.collection().InsertOne(ctx, message); err != nil {
		return entity.Message{}, err
	}
	return message, nil
}

// Conversation returns every message between the two users, in either
// direction, oldest first.
func (r *messageRepository) Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error) {
	filter := conversationFilter(user1, user2)
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var messages []entity.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) DeleteConversation(ctx context.Context, user1, user2 string) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, conversationFilter(user1, user2))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// UnreadCounts groups the receiver's unread messages by sender. The sender
// name is $first over the unread set, not necessarily the most recent one.
func (r *messageRepository) UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{
		{Key: "receiverId", Value: userId},
		{Key: "isRead", Value: bson.D{{Key: "$ne", Value: true}}},
	}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$senderId"},
		{Key: "unreadCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "lastMessageTimestamp", Value: bson.D{{Key: "$max", Value: "$timestamp"}}},
		{Key: "senderName", Value: bson.D{{Key: "$first", Value: "$senderName"}}},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "userId", Value: "$_id"},
		{Key: "unreadCount", Value: 1},
		{Key: "lastMessageTimestamp", Value: 1},
		{Key: "senderName", Value: 1},
		{Key: "_id", Value: 0},
	}}}

	cursor, err := r.collection().Aggregate(ctx, mongo.Pipeline{matchStage, groupStage, projectStage})
	if err != nil {
		return nil, err
	}

	var counts []entity.UnreadSummary
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// MarkConversationRead flips every unread message sent by otherUserId to
// currentUserId. Only documents still matching the unread filter are touched,
// so concurrent or repeated calls are safe no-ops.
func (r *messageRepository) MarkConversationRead(ctx context.Context, currentUserId, otherUserId string) (int64, error) {
	filter := bson.M{
		"senderId":   otherUserId,
		"receiverId": currentUserId,
		"isRead":     bson.M{"$ne": true},
	}
	update := bson.M{
		"$set": bson.M{
			"isRead": true,
			"readAt": time.Now().UTC(),
		},
	}

	result, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func conversationFilter(user1, user2 string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"senderId": user1, "receiverId": user2},
			{"senderId": user2, "receiverId": user1},
		},
	}
}
