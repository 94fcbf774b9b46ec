package handler

import (
	"time"

	"boarding/internal/domain/entity"
	"boarding/internal/usecase"
)

// SavedDataView is the wire shape for the resumable wizard state. The
// contact's credential hash and provider identifiers never leave the server.
type SavedDataView struct {
	SessionID   string     `json:"session_id"`
	Status      string     `json:"status"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Contact *SavedContactView `json:"contact,omitempty"`
}

// SavedContactView is the sanitized contact portion of SavedDataView.
type SavedContactView struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	CurrentStep   string `json:"current_step"`

	LegalFirstName  string `json:"legal_first_name"`
	LegalLastName   string `json:"legal_last_name"`
	DateOfBirth     string `json:"date_of_birth"`
	AddressCountry  string `json:"address_country"`
	AddressPostcode string `json:"address_postcode"`
	AddressLine1    string `json:"address_line1"`
	AddressLine2    string `json:"address_line2"`
	AddressTown     string `json:"address_town"`

	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`

	VATNumber                  string `json:"vat_number"`
	CustomerIndustry           string `json:"customer_industry"`
	EstimatedMonthlyCardVolume string `json:"estimated_monthly_card_volume"`
	AverageTransactionValue    string `json:"average_transaction_value"`
	DeliveryTimeframe          string `json:"delivery_timeframe"`
	CustomerSupportEmail       string `json:"customer_support_email"`
	CustomerWebsites           string `json:"customer_websites"`
	ProductDescription         string `json:"product_description"`

	CompanyName              string `json:"company_name"`
	CompanyNumber            string `json:"company_number"`
	CompanyRegisteredOffice  string `json:"company_registered_office"`
	CompanyIncorporatedIn    string `json:"company_incorporated_in"`
	CompanyIncorporationDate string `json:"company_incorporation_date"`
	CompanyIndustrySIC       string `json:"company_industry_sic"`

	BankAccountName   string `json:"bank_account_name"`
	BankCurrency      string `json:"bank_currency"`
	BankCountry       string `json:"bank_country"`
	BankSortCode      string `json:"bank_sort_code"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIBAN          string `json:"bank_iban"`

	KYCStatus    string `json:"kyc_status"`
	BankVerified bool   `json:"bank_verified"`
}

func newSavedDataView(output *usecase.SavedDataOutput) *SavedDataView {
	view := &SavedDataView{
		SessionID:   output.Session.ID.String(),
		Status:      string(output.Session.Status),
		Completed:   output.Session.Completed(),
		CompletedAt: output.Session.CompletedAt,
	}
	if output.Contact != nil {
		view.Contact = newSavedContactView(output.Contact)
	}

	return view
}

func newSavedContactView(contact *entity.Contact) *SavedContactView {
	return &SavedContactView{
		Email:         contact.Email,
		EmailVerified: contact.EmailVerified(),
		CurrentStep:   contact.CurrentStep,

		LegalFirstName:  contact.LegalFirstName,
		LegalLastName:   contact.LegalLastName,
		DateOfBirth:     contact.DateOfBirth,
		AddressCountry:  contact.AddressCountry,
		AddressPostcode: contact.AddressPostcode,
		AddressLine1:    contact.AddressLine1,
		AddressLine2:    contact.AddressLine2,
		AddressTown:     contact.AddressTown,

		PhoneCountryCode: contact.PhoneCountryCode,
		PhoneNumber:      contact.PhoneNumber,

		VATNumber:                  contact.VATNumber,
		CustomerIndustry:           contact.CustomerIndustry,
		EstimatedMonthlyCardVolume: contact.EstimatedMonthlyCardVolume,
		AverageTransactionValue:    contact.AverageTransactionValue,
		DeliveryTimeframe:          contact.DeliveryTimeframe,
		CustomerSupportEmail:       contact.CustomerSupportEmail,
		CustomerWebsites:           contact.CustomerWebsites,
		ProductDescription:         contact.ProductDescription,

		CompanyName:              contact.CompanyName,
		CompanyNumber:            contact.CompanyNumber,
		CompanyRegisteredOffice:  contact.CompanyRegisteredOffice,
		CompanyIncorporatedIn:    contact.CompanyIncorporatedIn,
		CompanyIncorporationDate: contact.CompanyIncorporationDate,
		CompanyIndustrySIC:       contact.CompanyIndustrySIC,

		BankAccountName:   contact.BankAccountName,
		BankCurrency:      contact.BankCurrency,
		BankCountry:       contact.BankCountry,
		BankSortCode:      contact.BankSortCode,
		BankAccountNumber: contact.BankAccountNumber,
		BankIBAN:          contact.BankIBAN,

		KYCStatus:    contact.KYCStatus,
		BankVerified: contact.BankVerified,
	}
}
