package handler

import (
	"log/slog"
	"net/http"

	"boarding/internal/delivery/http/response"
	"boarding/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// VerificationHandler holds dependencies for email, identity, and bank
// verification handlers.
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler.
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// VerifyEmailCodeRequest represents the request body for email code verification.
type VerifyEmailCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// CompleteKYCRequest represents the request body reporting an identity
// verification outcome.
type CompleteKYCRequest struct {
	Status string `json:"status" validate:"required,oneof=completed rejected"`
}

// VerifyEmailCode checks the submitted verification code against the most
// recent unused one.
func (h *VerificationHandler) VerifyEmailCode(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerifyEmailCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid verification code format")
	}

	output, err := h.verificationUC.VerifyEmailCode(c.Request().Context(), token, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetVerifyStatus reports whether the contact has verified their email.
func (h *VerificationHandler) GetVerifyStatus(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.verificationUC.GetVerifyStatus(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"email_verified": output.EmailVerified,
		"current_step":   output.CurrentStep,
	})
}

// CreateKYCToken issues an identity verification SDK token.
func (h *VerificationHandler) CreateKYCToken(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.verificationUC.CreateKYCToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"token":   output.Token,
		"user_id": output.UserID,
	})
}

// CompleteKYC records the identity verification outcome.
func (h *VerificationHandler) CompleteKYC(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CompleteKYCRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid KYC input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid KYC status")
	}

	output, err := h.verificationUC.CompleteKYC(c.Request().Context(), token, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// BankAuthURL returns the open-banking authorization URL for the session.
func (h *VerificationHandler) BankAuthURL(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	authURL, err := h.verificationUC.BankAuthURL(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"auth_url": authURL})
}

// BankCallback receives the open-banking redirect, runs account verification,
// and sends the browser back to the wizard.
func (h *VerificationHandler) BankCallback(c echo.Context) error {
	input := usecase.BankCallbackInput{
		Code:  c.QueryParam("code"),
		State: c.QueryParam("state"),
		Error: c.QueryParam("error"),
	}

	output, err := h.verificationUC.HandleBankCallback(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}
