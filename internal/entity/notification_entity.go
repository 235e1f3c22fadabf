package entity

import "time"

const (
	NotificationTaskAssigned  = "task_assigned"
	NotificationTaskReview    = "task_review"
	NotificationMessage       = "message"
	NotificationTaskCompleted = "task_completed"
)

// Notification is recipient-scoped: it is only ever visible to UserId.
// Correlation fields are stored only when set.
type Notification struct {
	Id         string     `bson:"_id" json:"id"`
	Type       string     `bson:"type" json:"type"`
	Title      string     `bson:"title" json:"title"`
	Message    string     `bson:"message" json:"message"`
	UserId     string     `bson:"userId" json:"userId"`
	ProjectId  string     `bson:"projectId,omitempty" json:"projectId,omitempty"`
	TaskId     string     `bson:"taskId,omitempty" json:"taskId,omitempty"`
	SenderId   string     `bson:"senderId,omitempty" json:"senderId,omitempty"`
	SenderName string     `bson:"senderName,omitempty" json:"senderName,omitempty"`
	IsRead     bool       `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func ValidNotificationType(t string) bool {
	switch t {
	case NotificationTaskAssigned, NotificationTaskReview, NotificationMessage, NotificationTaskCompleted:
		return true
	}
	return false
}
