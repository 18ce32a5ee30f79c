// Package models defines the data structures persisted in the document
// store and provides the core types used throughout the application.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission represents a user's permission level in the system.
// Levels are compared by exact match only — admin does not imply staff.
type Permission string

const (
	PermissionGuest Permission = "guest"
	PermissionStaff Permission = "staff"
	PermissionAdmin Permission = "admin"
)

// Valid returns true if the permission is one of the known levels.
func (p Permission) Valid() bool {
	switch p {
	case PermissionGuest, PermissionStaff, PermissionAdmin:
		return true
	}
	return false
}

// PermissionValues lists every known permission level, in declaration order.
func PermissionValues() []Permission {
	return []Permission{PermissionGuest, PermissionStaff, PermissionAdmin}
}

// User represents an identity record in the users collection.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash []byte             `bson:"passwd_hash" json:"-"` // Never serialize the hash
	FirstName    *string            `bson:"f_name,omitempty" json:"f_name,omitempty"`
	LastName     *string            `bson:"l_name,omitempty" json:"l_name,omitempty"`
	Permission   Permission         `bson:"permission" json:"permission"`
}

// IsAdmin returns true if the user has the admin permission.
func (u *User) IsAdmin() bool {
	return u.Permission == PermissionAdmin
}
