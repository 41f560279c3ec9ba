package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Role      string             `bson:"role" json:"role" validate:"oneof=admin user"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SetDefaults lowercases the email and fills the default role.
func (u *User) SetDefaults() {
	u.Email = strings.ToLower(u.Email)
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// Sanitize clears the password hash before the user is returned to a client.
func (u *User) Sanitize() {
	u.Password = ""
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	Avatar   string `json:"avatar"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
