package entity

import "time"

// Message is a direct message between two users. Apart from the one-way
// unread -> read transition a message is immutable once stored.
type Message struct {
	Id          string     `bson:"_id" json:"id"`
	SenderId    string     `bson:"senderId" json:"senderId"`
	SenderName  string     `bson:"senderName" json:"senderName"`
	ReceiverId  string     `bson:"receiverId" json:"receiverId"`
	Message     string     `bson:"message" json:"message"`
	Timestamp   time.Time  `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	IsRead      bool       `bson:"isRead" json:"isRead"`
	ReadAt      *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
	MessageType string     `bson:"messageType,omitempty" json:"messageType,omitempty"`
	FileUrl     string     `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	FileName    string     `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileSize    int64      `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	FileType    string     `bson:"fileType,omitempty" json:"fileType,omitempty"`
}

const (
	MessageTypeText  = "text"
	MessageTypeFile  = "file"
	MessageTypeImage = "image"
)

// UnreadSummary is one row of the per-sender unread aggregation for a
// receiver. UserId is the sender of the outstanding messages.
type UnreadSummary struct {
	UserId               string    `bson:"userId" json:"userId"`
	UnreadCount          int64     `bson:"unreadCount" json:"unreadCount"`
	LastMessageTimestamp time.Time `bson:"lastMessageTimestamp" json:"lastMessageTimestamp"`
	SenderName           string    `bson:"senderName" json:"senderName"`
}

type SendMessageRequest struct {
	SenderId    string `json:"senderId"`
	SenderName  string `json:"senderName"`
	ReceiverId  string `json:"receiverId"`
	Message     string `json:"message"`
	MessageType string `json:"messageType"`
	FileUrl     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	FileType    string `json:"fileType"`
}
