// Package agreement renders the merchant services agreement PDF.
package agreement

import (
	"bytes"
	"fmt"
	"strings"

	"boarding/internal/domain/entity"
	"boarding/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const placeholder = entity.AgreementPlaceholder

// pdfRenderer implements service.AgreementRenderer using fpdf.
type pdfRenderer struct{}

// NewPDFRenderer is the constructor for pdfRenderer.
func NewPDFRenderer() service.AgreementRenderer {
	return &pdfRenderer{}
}

// Render produces the agreement PDF bytes. Empty or missing contact fields
// render as blank lines; the blank specimen passes entity.BlankContact so
// every field is a fill-in line.
func (r *pdfRenderer) Render(data service.AgreementData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Merchant Services Agreement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.section(pdf, "Parties")
	partnerName := placeholder
	if data.Partner != nil && data.Partner.Name != "" {
		partnerName = data.Partner.Name
	}
	r.row(pdf, "Referring partner", partnerName)
	r.row(pdf, "Merchant", contactField(data.Contact, func(c *entity.Contact) string { return c.CompanyName }))
	r.row(pdf, "Company number", contactField(data.Contact, func(c *entity.Contact) string { return c.CompanyNumber }))
	r.row(pdf, "Registered office", contactField(data.Contact, func(c *entity.Contact) string { return c.CompanyRegisteredOffice }))

	r.section(pdf, "Authorised signatory")
	r.row(pdf, "Name", contactField(data.Contact, func(c *entity.Contact) string { return c.LegalName() }))
	r.row(pdf, "Email", contactField(data.Contact, func(c *entity.Contact) string { return c.Email }))
	r.row(pdf, "Phone", contactField(data.Contact, func(c *entity.Contact) string {
		return strings.TrimSpace(c.PhoneCountryCode + " " + c.PhoneNumber)
	}))

	r.section(pdf, "Settlement account")
	r.row(pdf, "Account name", contactField(data.Contact, func(c *entity.Contact) string { return c.BankAccountName }))
	r.row(pdf, "Sort code", contactField(data.Contact, func(c *entity.Contact) string { return c.BankSortCode }))
	r.row(pdf, "Account number", contactField(data.Contact, func(c *entity.Contact) string { return c.BankAccountNumber }))

	if data.ProductPackage != nil {
		r.section(pdf, "Equipment")
		for i := range data.ProductPackage.Items {
			item := &data.ProductPackage.Items[i]
			name := placeholder
			currency := "GBP"
			if item.Product != nil {
				name = item.Product.Name
				currency = item.Product.Currency
			}
			r.row(pdf, fmt.Sprintf("%d x %s", item.Quantity, name), formatMoney(item.UnitPrice()*int64(item.Quantity), currency))
		}
		r.row(pdf, "Total", formatMoney(data.ProductPackage.Total(), "GBP"))

		if fees := data.ProductPackage.FeeSchedule; fees != nil {
			r.section(pdf, "Processing fees")
			r.row(pdf, "Debit card rate", formatRate(fees.DebitRateBps))
			r.row(pdf, "Credit card rate", formatRate(fees.CreditRateBps))
			r.row(pdf, "Commercial card rate", formatRate(fees.CommercialRateBps))
			r.row(pdf, "Authorisation fee", formatMoney(fees.AuthorizationFee, "GBP"))
			r.row(pdf, "Monthly fee", formatMoney(fees.MonthlyFee, "GBP"))
			r.row(pdf, "Chargeback fee", formatMoney(fees.ChargebackFee, "GBP"))
			r.row(pdf, "Settlement period", fmt.Sprintf("%d business days", fees.SettlementPeriodDays))
		}
	}

	r.section(pdf, "Signature")
	r.row(pdf, "Signed by", placeholder)
	r.row(pdf, "Date", orPlaceholder(data.GeneratedAt))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render agreement pdf")
	}

	return buf.Bytes(), nil
}

func (r *pdfRenderer) section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func (r *pdfRenderer) row(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func contactField(contact *entity.Contact, get func(*entity.Contact) string) string {
	if contact == nil {
		return placeholder
	}

	return orPlaceholder(get(contact))
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}

	return value
}

func formatMoney(minor int64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(minor)/100)
}

func formatRate(bps int) string {
	return fmt.Sprintf("%.2f%%", float64(bps)/100)
}
