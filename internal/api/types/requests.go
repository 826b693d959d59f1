package types

import (
	"github.com/userweb/engine/internal/models"
	"github.com/userweb/engine/internal/services"
)

// CreateUserRequest is the POST /users payload. Absent and null fields are nil.
type CreateUserRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	ContactNumber *int64  `json:"contactNumber"`
}

func (r CreateUserRequest) Input() *services.CreateUserInput {
	return &services.CreateUserInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
	}
}

// UpdateUserRequest is the PUT payload. A key that is absent or null leaves the field unchanged.
type UpdateUserRequest struct {
	FirstName     models.Optional[string] `json:"firstName" swaggertype:"string"`
	LastName      models.Optional[string] `json:"lastName" swaggertype:"string"`
	Email         models.Optional[string] `json:"email" swaggertype:"string"`
	Address       models.Optional[string] `json:"address" swaggertype:"string"`
	ContactNumber models.Optional[int64]  `json:"contactNumber" swaggertype:"integer"`
}

func (r UpdateUserRequest) Input() *services.UpdateUserInput {
	return &services.UpdateUserInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
	}
}
