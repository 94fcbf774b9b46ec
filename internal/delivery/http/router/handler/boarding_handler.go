// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"boarding/internal/delivery/http/response"
	domainerrors "boarding/internal/domain/errors"
	"boarding/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoardingHandlerParams holds dependencies for BoardingHandler, injected by Fx.
type BoardingHandlerParams struct {
	fx.In

	BoardingUC usecase.BoardingUsecase
	Logger     *slog.Logger
}

// BoardingHandler holds dependencies for the wizard step handlers.
type BoardingHandler struct {
	boardingUC usecase.BoardingUsecase
	logger     *slog.Logger
}

// NewBoardingHandler is the constructor for BoardingHandler.
func NewBoardingHandler(params BoardingHandlerParams) *BoardingHandler {
	return &BoardingHandler{
		boardingUC: params.BoardingUC,
		logger:     params.Logger,
	}
}

// inviteToken extracts the invite token query parameter shared by every
// wizard route. Callers route the returned error through
// response.HandleAppError so the request stops at the 400.
func inviteToken(c echo.Context) (string, error) {
	token := c.QueryParam("token")
	if token == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("missing invite token")
	}

	return token, nil
}

// SubmitContactRequest represents the request body for the first wizard step.
type SubmitContactRequest struct {
	Email        string `json:"email" validate:"required,email"`
	ConfirmEmail string `json:"confirm_email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
}

// PersonalDetailsRequest represents the request body for the personal details step.
type PersonalDetailsRequest struct {
	LegalFirstName   string `json:"legal_first_name" validate:"required"`
	LegalLastName    string `json:"legal_last_name" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	AddressCountry   string `json:"address_country" validate:"required"`
	AddressPostcode  string `json:"address_postcode" validate:"required"`
	AddressLine1     string `json:"address_line1" validate:"required"`
	AddressLine2     string `json:"address_line2"`
	AddressTown      string `json:"address_town" validate:"required"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`
}

// BusinessFieldsRequest carries the optional business profile fields.
type BusinessFieldsRequest struct {
	VATNumber                  string `json:"vat_number"`
	CustomerIndustry           string `json:"customer_industry"`
	EstimatedMonthlyCardVolume string `json:"estimated_monthly_card_volume"`
	AverageTransactionValue    string `json:"average_transaction_value"`
	DeliveryTimeframe          string `json:"delivery_timeframe"`
	CustomerSupportEmail       string `json:"customer_support_email"`
	CustomerWebsites           string `json:"customer_websites"`
	ProductDescription         string `json:"product_description"`
}

// CompanyFieldsRequest carries the optional company detail fields.
type CompanyFieldsRequest struct {
	CompanyName              string `json:"company_name"`
	CompanyNumber            string `json:"company_number"`
	CompanyRegisteredOffice  string `json:"company_registered_office"`
	CompanyIncorporatedIn    string `json:"company_incorporated_in"`
	CompanyIncorporationDate string `json:"company_incorporation_date"`
	CompanyIndustrySIC       string `json:"company_industry_sic"`
}

// BankDetailsRequest represents the request body for the bank details step.
type BankDetailsRequest struct {
	BankAccountName   string `json:"bank_account_name" validate:"required"`
	BankCurrency      string `json:"bank_currency"`
	BankCountry       string `json:"bank_country"`
	BankSortCode      string `json:"bank_sort_code"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIBAN          string `json:"bank_iban"`

	Business BusinessFieldsRequest `json:"business"`
	Company  CompanyFieldsRequest  `json:"company"`
}

// SaveForLaterRequest represents a partial update of any subset of wizard data.
type SaveForLaterRequest struct {
	CurrentStep string `json:"current_step"`

	Personal *PersonalDetailsRequest `json:"personal"`
	Business *BusinessFieldsRequest  `json:"business"`
	Company  *CompanyFieldsRequest   `json:"company"`
	Bank     *BankDetailsRequest     `json:"bank"`

	SendResumeEmail bool `json:"send_resume_email"`
}

// LoginRequest represents the request body for logging back into a session.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GetInviteInfo returns invite resolution plus display data for the landing page.
func (h *BoardingHandler) GetInviteInfo(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.boardingUC.GetInviteInfo(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":           output.Token,
		"partner_name":    output.PartnerName,
		"email":           output.Email,
		"completed":       output.Completed,
		"current_step":    output.CurrentStep,
		"product_package": output.ProductPackage,
	})
}

// GetSavedData returns the resumable wizard state for form pre-population.
func (h *BoardingHandler) GetSavedData(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.boardingUC.GetSavedData(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSavedDataView(output))
}

// GetInviteQR serves a PNG QR code encoding the wizard resume URL.
func (h *BoardingHandler) GetInviteQR(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.boardingUC.GetInviteQR(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetAddressLookup finds UK addresses by postcode. The route is public: it
// serves the personal details form before any session exists.
func (h *BoardingHandler) GetAddressLookup(c echo.Context) error {
	postcode := c.QueryParam("postcode")
	if postcode == "" {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("missing postcode"))
	}

	addresses, err := h.boardingUC.LookupAddress(c.Request().Context(), postcode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]map[string]any, 0, len(addresses))
	for _, address := range addresses {
		results = append(results, map[string]any{
			"address_line1": address.AddressLine1,
			"address_line2": address.AddressLine2,
			"town":          address.Town,
			"postcode":      address.Postcode,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"addresses": results,
	})
}

// SubmitContact handles the first wizard step.
func (h *BoardingHandler) SubmitContact(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid contact input")
	}

	output, err := h.boardingUC.SubmitContact(c.Request().Context(), token, usecase.SubmitContactInput{
		Email:        req.Email,
		ConfirmEmail: req.ConfirmEmail,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// SubmitPersonalDetails handles the personal details step.
func (h *BoardingHandler) SubmitPersonalDetails(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PersonalDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid personal details input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid personal details input")
	}

	output, err := h.boardingUC.SubmitPersonalDetails(c.Request().Context(), token, personalDetailsInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SubmitBankDetails handles the bank details step.
func (h *BoardingHandler) SubmitBankDetails(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BankDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bank details input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid bank details input")
	}

	output, err := h.boardingUC.SubmitBankDetails(c.Request().Context(), token, bankDetailsInput(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SaveForLater stores a partial update without enforcing step ordering.
func (h *BoardingHandler) SaveForLater(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SaveForLaterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save input")
	}

	input := usecase.SaveForLaterInput{
		CurrentStep:     req.CurrentStep,
		SendResumeEmail: req.SendResumeEmail,
	}
	if req.Personal != nil {
		personal := personalDetailsInput(*req.Personal)
		input.Personal = &personal
	}
	if req.Business != nil {
		business := businessFieldsInput(*req.Business)
		input.Business = &business
	}
	if req.Company != nil {
		company := companyFieldsInput(*req.Company)
		input.Company = &company
	}
	if req.Bank != nil {
		bank := bankDetailsInput(*req.Bank)
		input.Bank = &bank
	}

	if err := h.boardingUC.SaveForLater(c.Request().Context(), token, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Progress saved"})
}

// Login handles a contact logging back into their session.
func (h *BoardingHandler) Login(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}

	output, err := h.boardingUC.Login(c.Request().Context(), token, usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token": output.AccessToken,
		"invite_token": output.InviteToken,
		"current_step": output.CurrentStep,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func personalDetailsInput(req PersonalDetailsRequest) usecase.PersonalDetailsInput {
	return usecase.PersonalDetailsInput{
		LegalFirstName:   req.LegalFirstName,
		LegalLastName:    req.LegalLastName,
		DateOfBirth:      req.DateOfBirth,
		AddressCountry:   req.AddressCountry,
		AddressPostcode:  req.AddressPostcode,
		AddressLine1:     req.AddressLine1,
		AddressLine2:     req.AddressLine2,
		AddressTown:      req.AddressTown,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.PhoneNumber,
	}
}

func businessFieldsInput(req BusinessFieldsRequest) usecase.BusinessFieldsInput {
	return usecase.BusinessFieldsInput{
		VATNumber:                  req.VATNumber,
		CustomerIndustry:           req.CustomerIndustry,
		EstimatedMonthlyCardVolume: req.EstimatedMonthlyCardVolume,
		AverageTransactionValue:    req.AverageTransactionValue,
		DeliveryTimeframe:          req.DeliveryTimeframe,
		CustomerSupportEmail:       req.CustomerSupportEmail,
		CustomerWebsites:           req.CustomerWebsites,
		ProductDescription:         req.ProductDescription,
	}
}

func companyFieldsInput(req CompanyFieldsRequest) usecase.CompanyFieldsInput {
	return usecase.CompanyFieldsInput{
		CompanyName:              req.CompanyName,
		CompanyNumber:            req.CompanyNumber,
		CompanyRegisteredOffice:  req.CompanyRegisteredOffice,
		CompanyIncorporatedIn:    req.CompanyIncorporatedIn,
		CompanyIncorporationDate: req.CompanyIncorporationDate,
		CompanyIndustrySIC:       req.CompanyIndustrySIC,
	}
}

func bankDetailsInput(req BankDetailsRequest) usecase.BankDetailsInput {
	return usecase.BankDetailsInput{
		BankAccountName:   req.BankAccountName,
		BankCurrency:      req.BankCurrency,
		BankCountry:       req.BankCountry,
		BankSortCode:      req.BankSortCode,
		BankAccountNumber: req.BankAccountNumber,
		BankIBAN:          req.BankIBAN,
		Business:          businessFieldsInput(req.Business),
		Company:           companyFieldsInput(req.Company),
	}
}
