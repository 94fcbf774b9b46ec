package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel mirrors the 'merchants' table.
type MerchantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	LegalName string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Users []MerchantUserModel `gorm:"foreignKey:MerchantID"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// MerchantUserModel mirrors the 'merchant_users' table. Email carries a
// unique index so a person can only register once across all merchants.
type MerchantUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantUserModel) TableName() string {
	return "merchant_users"
}
