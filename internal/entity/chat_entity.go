package entity

import "time"

// ChatMessage is a message in a project room. Unlike direct messages there is
// no read tracking; rooms are keyed by project id with no membership model.
type ChatMessage struct {
	Id          string    `bson:"_id" json:"id"`
	ProjectId   string    `bson:"projectId" json:"projectId"`
	UserId      string    `bson:"userId" json:"userId"`
	UserName    string    `bson:"userName" json:"userName"`
	UserRole    string    `bson:"userRole" json:"userRole"`
	Message     string    `bson:"message" json:"message"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	MessageType string    `bson:"messageType,omitempty" json:"messageType,omitempty"`
	FileUrl     string    `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	FileName    string    `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileSize    int64     `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	FileType    string    `bson:"fileType,omitempty" json:"fileType,omitempty"`
}
