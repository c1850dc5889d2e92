// Package model contains the GORM persistence models and their table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM persistence model for a member profile.
// Seq is a serial column used to preserve insertion order for the directory
// listing; the UUID stays the public identifier.
type ProfileModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Seq        int64     `gorm:"column:seq;autoIncrement;uniqueIndex"`
	Name       string    `gorm:"column:name;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;not null"`
	Batch      string    `gorm:"column:batch;not null"`
	Education  string    `gorm:"column:education;not null"`
	Major      string    `gorm:"column:major;not null"`
	Job        string    `gorm:"column:job;not null"`
	Company    string    `gorm:"column:company"`
	Location   string    `gorm:"column:location"`
	Phone      string    `gorm:"column:phone"`
	Linkedin   string    `gorm:"column:linkedin"`
	Image      string    `gorm:"column:image"`
	Interests  []string  `gorm:"column:interests;serializer:json;type:jsonb"`
	Committees []string  `gorm:"column:committees;serializer:json;type:jsonb"`
	Bio        string    `gorm:"column:bio;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel is the GORM persistence model for an authentication credential.
type CredentialModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordDigest string    `gorm:"column:password_digest;not null"`
	ProfileID      uuid.UUID `gorm:"column:profile_id;type:uuid;index;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (CredentialModel) TableName() string {
	return "credentials"
}
