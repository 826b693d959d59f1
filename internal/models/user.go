package models

import "github.com/google/uuid"

// User is a stored user record. Email is the lookup key for by-email operations;
// its uniqueness is enforced by the service, not by the schema.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     *string   `json:"firstName"`
	LastName      *string   `json:"lastName"`
	Email         string    `gorm:"not null" json:"email"`
	Address       *string   `json:"address"`
	ContactNumber *int64    `json:"contactNumber"`
}
