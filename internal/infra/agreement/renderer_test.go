package agreement

import (
	"testing"

	"boarding/internal/domain/entity"
	"boarding/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_FilledAgreement(t *testing.T) {
	renderer := NewPDFRenderer()

	override := int64(4999)
	pdf, err := renderer.Render(service.AgreementData{
		Partner: &entity.Partner{Name: "Acme Referrals Ltd"},
		Contact: &entity.Contact{
			Email:          "ada@example.com",
			LegalFirstName: "Ada",
			LegalLastName:  "Lovelace",
			CompanyName:    "Analytical Engines Limited",
			CompanyNumber:  "01234567",
			BankSortCode:   "04-11-34",
		},
		ProductPackage: &entity.ProductPackage{
			Items: []entity.ProductPackageItem{
				{
					Quantity:      2,
					PriceOverride: &override,
					Product:       &entity.CatalogProduct{Name: "Card Terminal", UnitPrice: 5999, Currency: "GBP"},
				},
			},
			FeeSchedule: &entity.FeeSchedule{
				DebitRateBps:         50,
				CreditRateBps:        75,
				SettlementPeriodDays: 3,
			},
		},
		GeneratedAt: "2026-08-31",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_BlankAgreement(t *testing.T) {
	renderer := NewPDFRenderer()

	// The placeholder contact renders a fill-in line on every field,
	// producing the blank specimen document.
	pdf, err := renderer.Render(service.AgreementData{Contact: entity.BlankContact()})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "GBP 49.99", formatMoney(4999, "GBP"))
	assert.Equal(t, "0.50%", formatRate(50))
	assert.Equal(t, placeholder, orPlaceholder("  "))
	assert.Equal(t, "value", orPlaceholder("value"))
}
