package handler

import (
	"net/http"
	"testing"

	domainerrors "boarding/internal/domain/errors"
	mockusecase "boarding/internal/mocks/usecase"
	"boarding/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAgreementHandler_SubmitReview_SigningCeremony(t *testing.T) {
	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().SubmitReview(mock.Anything, "invite-token-123").Return(&usecase.SubmitReviewOutput{
		SigningURL: "https://esign.test/ceremony/envelope-1",
	}, nil)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/submit-review?token=invite-token-123", "")

	assert.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "esign.test/ceremony")
	assert.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestAgreementHandler_SubmitReview_KYCIncomplete(t *testing.T) {
	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().SubmitReview(mock.Anything, "invite-token-123").
		Return(nil, domainerrors.ErrKYCNotCompleted)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/submit-review?token=invite-token-123", "")

	assert.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.Contains(t, rec.Body.String(), "KYC_NOT_COMPLETED")
}

func TestAgreementHandler_SigningCallback_Redirects(t *testing.T) {
	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().HandleSigningCallback(mock.Anything, "invite-token-123", "signing_complete").
		Return(&usecase.SigningCallbackOutput{
			RedirectURL: "https://checkout.example.com/board/invite-token-123?step=done",
		}, nil)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/esign/callback?token=invite-token-123&event=signing_complete", "")

	assert.NoError(t, h.SigningCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "step=done")
}

func TestAgreementHandler_GetAgreementPDF(t *testing.T) {
	pdf := []byte("%PDF-1.7 signed agreement")

	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().GetAgreementPDF(mock.Anything, "invite-token-123").Return(pdf, nil)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/agreement-pdf?token=invite-token-123", "")

	assert.NoError(t, h.GetAgreementPDF(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestAgreementHandler_GetAgreementPDF_NotFound(t *testing.T) {
	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().GetAgreementPDF(mock.Anything, "invite-token-123").
		Return(nil, domainerrors.ErrAgreementNotFound)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/agreement-pdf?token=invite-token-123", "")

	assert.NoError(t, h.GetAgreementPDF(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "AGREEMENT_NOT_FOUND")
}

func TestAgreementHandler_RegenerateAgreement(t *testing.T) {
	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().RegenerateAgreement(mock.Anything, "invite-token-123").Return(nil)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/regenerate-agreement?token=invite-token-123", "")

	assert.NoError(t, h.RegenerateAgreement(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAgreementHandler_GetBlankAgreementPDF(t *testing.T) {
	pdf := []byte("%PDF-1.7 specimen")

	uc := mockusecase.NewMockAgreementUsecase(t)
	uc.EXPECT().GetBlankAgreementPDF(mock.Anything, "invite-token-123").Return(pdf, nil)

	h := &AgreementHandler{agreementUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/blank-agreement-pdf?token=invite-token-123", "")

	assert.NoError(t, h.GetBlankAgreementPDF(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
}
