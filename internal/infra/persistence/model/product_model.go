package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogProductModel mirrors the 'catalog_products' table.
type CatalogProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SKU         string    `gorm:"type:varchar(64);unique;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	UnitPrice   int64     `gorm:"not null"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogProductModel) TableName() string {
	return "catalog_products"
}

// FeeScheduleModel mirrors the 'fee_schedules' table. Rates are stored in
// basis points and fees in minor currency units.
type FeeScheduleModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	DebitRateBps         int       `gorm:"not null"`
	CreditRateBps        int       `gorm:"not null"`
	CommercialRateBps    int       `gorm:"not null"`
	AuthorizationFee     int64     `gorm:"not null"`
	MonthlyFee           int64     `gorm:"not null"`
	ChargebackFee        int64     `gorm:"not null"`
	SettlementPeriodDays int       `gorm:"not null"`
	MinimumMonthlyCharge int64     `gorm:"not null"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeeScheduleModel) TableName() string {
	return "fee_schedules"
}

// ProductPackageModel mirrors the 'product_packages' table.
type ProductPackageModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	FeeScheduleID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	FeeSchedule *FeeScheduleModel         `gorm:"foreignKey:FeeScheduleID;references:ID"`
	Items       []ProductPackageItemModel `gorm:"foreignKey:PackageID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductPackageModel) TableName() string {
	return "product_packages"
}

// ProductPackageItemModel mirrors the 'product_package_items' table.
type ProductPackageItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PackageID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	Quantity      int       `gorm:"not null;default:1"`
	PriceOverride *int64

	Product *CatalogProductModel `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductPackageItemModel) TableName() string {
	return "product_package_items"
}
