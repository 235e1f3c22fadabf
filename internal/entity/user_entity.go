package entity

import "time"

const (
	RoleClient         = "client"
	RoleProjectManager = "project_manager"
	RoleDesigner       = "designer"
	RoleAdmin          = "admin"
)

type User struct {
	Id        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleProjectManager, RoleDesigner, RoleAdmin:
		return true
	}
	return false
}
