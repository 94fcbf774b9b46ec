package handler

import (
	"log/slog"
	"net/http"

	"boarding/internal/delivery/http/response"
	"boarding/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AgreementHandlerParams holds dependencies for AgreementHandler, injected by Fx.
type AgreementHandlerParams struct {
	fx.In

	AgreementUC usecase.AgreementUsecase
	Logger      *slog.Logger
}

// AgreementHandler holds dependencies for services-agreement handlers.
type AgreementHandler struct {
	agreementUC usecase.AgreementUsecase
	logger      *slog.Logger
}

// NewAgreementHandler is the constructor for AgreementHandler.
func NewAgreementHandler(params AgreementHandlerParams) *AgreementHandler {
	return &AgreementHandler{
		agreementUC: params.AgreementUC,
		logger:      params.Logger,
	}
}

// SubmitReview generates the agreement and either completes the session or
// opens an embedded signing ceremony.
func (h *AgreementHandler) SubmitReview(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.agreementUC.SubmitReview(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"completed":   output.Completed,
		"signing_url": output.SigningURL,
	})
}

// SigningCallback receives the e-signature return redirect and finalizes the
// session when the ceremony completed.
func (h *AgreementHandler) SigningCallback(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.agreementUC.HandleSigningCallback(c.Request().Context(), token, c.QueryParam("event"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// RegenerateAgreement rebuilds the agreement artifact without touching the
// session lifecycle.
func (h *AgreementHandler) RegenerateAgreement(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.agreementUC.RegenerateAgreement(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Agreement regenerated"})
}

// GetAgreementPDF serves the signed agreement when present, the unsigned
// one otherwise.
func (h *AgreementHandler) GetAgreementPDF(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pdf, err := h.agreementUC.GetAgreementPDF(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// GetBlankAgreementPDF serves a specimen agreement with placeholder data.
func (h *AgreementHandler) GetBlankAgreementPDF(c echo.Context) error {
	token, err := inviteToken(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pdf, err := h.agreementUC.GetBlankAgreementPDF(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
