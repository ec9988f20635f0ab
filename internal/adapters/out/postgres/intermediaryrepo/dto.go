// Package intermediaryrepo provides data transfer objects and mapping
// functions for intermediary persistence.
package intermediaryrepo

import (
	"github.com/google/uuid"

	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
)

// IntermediaryDTO represents the database structure for persisting
// intermediary aggregates. Email is unique, it doubles as the login name.
type IntermediaryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	City         string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for intermediary entities.
func (IntermediaryDTO) TableName() string {
	return "intermediaries"
}

func fromDomain(aggregate *intermediary.Intermediary) IntermediaryDTO {
	return IntermediaryDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		City:         aggregate.City(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

func toDomain(dto IntermediaryDTO) (*intermediary.Intermediary, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return intermediary.RestoreIntermediary(id, dto.Name, dto.Email, dto.City, dto.PasswordHash)
}
