package handler

import (
	"net/http"
	"testing"

	"boarding/internal/domain/entity"
	domainerrors "boarding/internal/domain/errors"
	mockusecase "boarding/internal/mocks/usecase"
	"boarding/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVerificationHandler_VerifyEmailCode(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().VerifyEmailCode(mock.Anything, "invite-token-123", "482915").
		Return(&usecase.StepOutput{CurrentStep: entity.StepPersonal}, nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/verify-email-code?token=invite-token-123", `{"code":"482915"}`)

	assert.NoError(t, h.VerifyEmailCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entity.StepPersonal)
}

func TestVerificationHandler_VerifyEmailCode_BadFormat(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	// Codes are always six digits; anything else is rejected before the usecase.
	c, rec := newTestContext(http.MethodPost, "/boarding/verify-email-code?token=invite-token-123", `{"code":"12ab"}`)

	assert.NoError(t, h.VerifyEmailCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerificationHandler_VerifyEmailCode_WrongCode(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().VerifyEmailCode(mock.Anything, "invite-token-123", "000000").
		Return(nil, domainerrors.ErrVerificationCodeInvalid)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/verify-email-code?token=invite-token-123", `{"code":"000000"}`)

	assert.NoError(t, h.VerifyEmailCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VERIFICATION_CODE_INVALID")
}

func TestVerificationHandler_GetVerifyStatus(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().GetVerifyStatus(mock.Anything, "invite-token-123").
		Return(&usecase.VerifyStatusOutput{EmailVerified: true, CurrentStep: entity.StepPersonal}, nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/verify-status?token=invite-token-123", "")

	assert.NoError(t, h.GetVerifyStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email_verified":true`)
}

func TestVerificationHandler_CreateKYCToken(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().CreateKYCToken(mock.Anything, "invite-token-123").
		Return(&usecase.KYCTokenOutput{Token: "sdk-token", UserID: "11111111-1111-1111-1111-111111111111"}, nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/kyc/token?token=invite-token-123", "")

	assert.NoError(t, h.CreateKYCToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sdk-token")
}

func TestVerificationHandler_CreateKYCToken_Unconfigured(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().CreateKYCToken(mock.Anything, "invite-token-123").
		Return(nil, domainerrors.ErrProviderUnavailable)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/kyc/token?token=invite-token-123", "")

	assert.NoError(t, h.CreateKYCToken(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROVIDER_UNAVAILABLE")
}

func TestVerificationHandler_CompleteKYC_BadStatus(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodPost, "/boarding/kyc/complete?token=invite-token-123", `{"status":"maybe"}`)

	assert.NoError(t, h.CompleteKYC(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerificationHandler_BankAuthURL(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().BankAuthURL(mock.Anything, "invite-token-123").
		Return("https://auth.truelayer.test/?state=invite-token-123", nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/bank/auth-url?token=invite-token-123", "")

	assert.NoError(t, h.BankAuthURL(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "auth.truelayer.test")
}

func TestVerificationHandler_BankCallback_Redirects(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().HandleBankCallback(mock.Anything, usecase.BankCallbackInput{
		Code:  "exchange-code",
		State: "invite-token-123",
	}).Return(&usecase.BankVerificationOutput{
		RedirectURL: "https://checkout.example.com/board/invite-token-123?step=step6&bank_verified=1",
	}, nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/bank/callback?code=exchange-code&state=invite-token-123", "")

	assert.NoError(t, h.BankCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		"https://checkout.example.com/board/invite-token-123?step=step6&bank_verified=1",
		rec.Header().Get(echo.HeaderLocation),
	)
}

func TestVerificationHandler_BankCallback_VendorError(t *testing.T) {
	uc := mockusecase.NewMockVerificationUsecase(t)
	uc.EXPECT().HandleBankCallback(mock.Anything, usecase.BankCallbackInput{
		State: "invite-token-123",
		Error: "access_denied",
	}).Return(&usecase.BankVerificationOutput{
		RedirectURL: "https://checkout.example.com/board/invite-token-123?step=step6&bank_verified=0",
	}, nil)

	h := &VerificationHandler{verificationUC: uc, logger: testLogger()}

	c, rec := newTestContext(http.MethodGet, "/boarding/bank/callback?state=invite-token-123&error=access_denied", "")

	assert.NoError(t, h.BankCallback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "bank_verified=0")
}
