package entity

import "time"

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)

type Task struct {
	Id            string    `bson:"_id" json:"id"`
	ProjectId     string    `bson:"projectId" json:"projectId"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	AssigneeId    string    `bson:"assigneeId" json:"assigneeId"`
	AssigneeName  string    `bson:"assigneeName" json:"assigneeName"`
	CreatedBy     string    `bson:"createdBy" json:"createdBy"`
	CreatedByName string    `bson:"createdByName" json:"createdByName"`
	Status        string    `bson:"status" json:"status"`
	Priority      string    `bson:"priority" json:"priority"`
	DueDate       string    `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TaskUpdate carries the mutable task fields. Nil means "leave unchanged".
type TaskUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	AssigneeId   *string `json:"assigneeId"`
	AssigneeName *string `json:"assigneeName"`
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"dueDate"`
}
