package entity

import "time"

const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusReview     = "review"
	ProjectStatusCompleted  = "completed"
)

type Project struct {
	Id           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Requirements string    `bson:"requirements" json:"requirements"`
	Timeline     string    `bson:"timeline" json:"timeline"`
	Status       string    `bson:"status" json:"status"`
	ClientId     string    `bson:"clientId" json:"clientId"`
	ManagerId    string    `bson:"managerId" json:"managerId"`
	DesignerIds  []string  `bson:"designerIds" json:"designerIds"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProjectFilter narrows the project index. Role scoping follows the dashboard
// views: clients see their own projects, managers the ones they run, designers
// the ones they are assigned to.
type ProjectFilter struct {
	UserId   string
	UserRole string
	Search   string
}
