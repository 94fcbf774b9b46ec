package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogProduct is an orderable item from the hardware/software catalog.
type CatalogProduct struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description string
	UnitPrice   int64 // Minor currency units.
	Currency    string
	CreatedAt   time.Time
}

// FeeSchedule is the pricing attached to a product package: the card
// processing rates the merchant agrees to in the services agreement.
type FeeSchedule struct {
	ID                   uuid.UUID
	Name                 string
	DebitRateBps         int // Basis points.
	CreditRateBps        int
	CommercialRateBps    int
	AuthorizationFee     int64 // Minor currency units per transaction.
	MonthlyFee           int64
	ChargebackFee        int64
	SettlementPeriodDays int
	MinimumMonthlyCharge int64
	CreatedAt            time.Time
}

// ProductPackageItem is a line in a package: a catalog product plus
// quantity and any per-line price override.
type ProductPackageItem struct {
	ID            uuid.UUID
	PackageID     uuid.UUID
	ProductID     uuid.UUID
	Product       *CatalogProduct
	Quantity      int
	PriceOverride *int64
}

// UnitPrice returns the effective per-unit price of the line.
func (i *ProductPackageItem) UnitPrice() int64 {
	if i.PriceOverride != nil {
		return *i.PriceOverride
	}
	if i.Product != nil {
		return i.Product.UnitPrice
	}
	return 0
}

// ProductPackage is the partner-configured bundle of hardware and pricing
// a boarding session signs up for. It is fixed at invite time.
type ProductPackage struct {
	ID            uuid.UUID
	PartnerID     uuid.UUID
	Name          string
	FeeScheduleID uuid.UUID
	FeeSchedule   *FeeSchedule
	Items         []ProductPackageItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Total returns the one-off hardware total across all package lines.
func (p *ProductPackage) Total() int64 {
	var total int64
	for i := range p.Items {
		total += p.Items[i].UnitPrice() * int64(p.Items[i].Quantity)
	}
	return total
}
