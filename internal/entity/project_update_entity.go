package entity

import "time"

const (
	ProjectUpdateDesign  = "design"
	ProjectUpdateFile    = "file"
	ProjectUpdateComment = "comment"
)

// ProjectUpdate is one progress entry on a project's timeline: a design
// revision, an uploaded file, or a plain comment.
type ProjectUpdate struct {
	Id          string     `bson:"_id" json:"id"`
	ProjectId   string     `bson:"projectId" json:"projectId"`
	UserId      string     `bson:"userId" json:"userId"`
	Type        string     `bson:"type" json:"type"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	FileUrl     string     `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	FileName    string     `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileSize    int64      `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	FileType    string     `bson:"fileType,omitempty" json:"fileType,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func ValidProjectUpdateType(t string) bool {
	switch t {
	case ProjectUpdateDesign, ProjectUpdateFile, ProjectUpdateComment:
		return true
	}
	return false
}
