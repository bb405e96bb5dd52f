// Package userrepo provides data transfer objects and mapping functions for user persistence.
// The order lifecycle only reads users; writes happen in the identity flow.
package userrepo

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Role is stored as its integer enum value; the franchise area is NULL for
// global service agents and for admins.
type UserDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Email           string `gorm:"index"`
	Phone           string
	Role            int        `gorm:"index"`
	FranchiseAreaID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive        bool
	CreatedAt       time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// FranchiseAreaDTO represents the directory of franchise areas users belong to.
// The order lifecycle reads it only for display names in agent listings.
type FranchiseAreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	City string
}

// TableName specifies the database table name for franchise area entities.
func (FranchiseAreaDTO) TableName() string {
	return "franchise_areas"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	var areaID *uuid.UUID
	if id := aggregate.FranchiseAreaID(); id != nil {
		raw := id.Bytes()
		areaID = &raw
	}

	return UserDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Role:            int(aggregate.Role()),
		FranchiseAreaID: areaID,
		IsActive:        aggregate.IsActive(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var areaID *kernel.UUID
	if dto.FranchiseAreaID != nil {
		aID, areaErr := kernel.UUIDFromBytes((*dto.FranchiseAreaID)[:])
		if areaErr != nil {
			return nil, areaErr
		}

		areaID = &aID
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		user.Role(dto.Role),
		areaID,
		dto.IsActive,
		dto.CreatedAt,
	)
}
