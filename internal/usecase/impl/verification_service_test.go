package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"boarding/config"
	"boarding/internal/domain/entity"
	domainerrors "boarding/internal/domain/errors"
	"boarding/internal/domain/repository"
	"boarding/internal/domain/service"
	mockRepo "boarding/internal/mocks/repository"
	mockSvc "boarding/internal/mocks/service"
	"boarding/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service      usecase.VerificationUsecase
	txManager    *mockRepo.MockTransactionManager
	inviteRepo   *mockRepo.MockInviteRepository
	sessionRepo  *mockRepo.MockSessionRepository
	contactRepo  *mockRepo.MockContactRepository
	kycProvider  *mockSvc.MockKYCProvider
	bankProvider *mockSvc.MockBankDataProvider
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	inviteRepo := mockRepo.NewMockInviteRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	kycProvider := mockSvc.NewMockKYCProvider(t)
	bankProvider := mockSvc.NewMockBankDataProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Boarding: &config.BoardingConfig{
			FrontendBaseURL: "https://checkout.example.com",
		},
	}

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:    txManager,
		InviteRepo:   inviteRepo,
		SessionRepo:  sessionRepo,
		ContactRepo:  contactRepo,
		KYCProvider:  kycProvider,
		BankProvider: bankProvider,
		Config:       cfg,
		Logger:       logger,
	})

	return verificationServiceFixtures{
		service:      svc,
		txManager:    txManager,
		inviteRepo:   inviteRepo,
		sessionRepo:  sessionRepo,
		contactRepo:  contactRepo,
		kycProvider:  kycProvider,
		bankProvider: bankProvider,
	}
}

func unverifiedContact(sessionID uuid.UUID) *entity.Contact {
	return &entity.Contact{
		ID:             uuid.New(),
		SessionID:      sessionID,
		Email:          "ada@example.com",
		PasswordHash:   "hashed_password",
		CurrentStep:    entity.StepVerify,
		LegalFirstName: "Ada",
		LegalLastName:  "Lovelace",
	}
}

func TestVerificationService_VerifyEmailCode_MaterializesMerchant(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{
		ID:        uuid.New(),
		PartnerID: invite.PartnerID,
		InviteID:  invite.ID,
		Status:    entity.SessionStatusInProgress,
	}
	contact := unverifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	merchantID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)

			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewMerchantRepository().Return(mockMerchantRepo)

			code := &entity.EmailVerificationCode{
				ID:        uuid.New(),
				ContactID: contact.ID,
				Code:      "482915",
				ExpiresAt: time.Now().Add(10 * time.Minute),
			}
			mockCodeRepo.EXPECT().FindUsableByContactAndCode(ctx, contact.ID, "482915").Return(code, nil)
			mockCodeRepo.EXPECT().MarkUsed(ctx, code.ID).Return(nil)

			mockContactRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, updated *entity.Contact) {
					assert.NotNil(t, updated.EmailVerifiedAt)
					assert.Equal(t, entity.StepPersonal, updated.CurrentStep)
				}).
				Return(nil)

			mockMerchantRepo.EXPECT().
				CreateMerchant(ctx, mock.AnythingOfType("*entity.Merchant")).
				Run(func(ctx context.Context, merchant *entity.Merchant) {
					assert.Equal(t, session.PartnerID, merchant.PartnerID)
					assert.Equal(t, "Ada Lovelace", merchant.LegalName)
					merchant.ID = merchantID
				}).
				Return(nil)
			mockMerchantRepo.EXPECT().
				CreateMerchantUser(ctx, mock.AnythingOfType("*entity.MerchantUser")).
				Run(func(ctx context.Context, user *entity.MerchantUser) {
					assert.Equal(t, merchantID, user.MerchantID)
					assert.Equal(t, contact.Email, user.Email)
					assert.Equal(t, contact.PasswordHash, user.PasswordHash)
				}).
				Return(nil)

			mockSessionRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.BoardingSession")).
				Run(func(ctx context.Context, updated *entity.BoardingSession) {
					require.NotNil(t, updated.MerchantID)
					assert.Equal(t, merchantID, *updated.MerchantID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.VerifyEmailCode(ctx, invite.Token, "482915")

	require.NoError(t, err)
	assert.Equal(t, entity.StepPersonal, output.CurrentStep)
}

func TestVerificationService_VerifyEmailCode_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	session.Contact = verifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.VerifyEmailCode(ctx, invite.Token, "000000")

	require.NoError(t, err)
	assert.Equal(t, entity.StepPersonal, output.CurrentStep)
}

func TestVerificationService_VerifyEmailCode_WrongCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := unverifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)

			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewMerchantRepository().Return(mockMerchantRepo)

			mockCodeRepo.EXPECT().
				FindUsableByContactAndCode(ctx, contact.ID, "111111").
				Return(nil, repository.ErrCodeNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.VerifyEmailCode(ctx, invite.Token, "111111")

	assert.ErrorIs(t, err, domainerrors.ErrVerificationCodeInvalid)
	assert.Nil(t, output)
}

func TestVerificationService_VerifyEmailCode_OlderCodeStillRedeems(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	merchantID := uuid.New()
	session := &entity.BoardingSession{
		ID:         uuid.New(),
		PartnerID:  invite.PartnerID,
		InviteID:   invite.ID,
		Status:     entity.SessionStatusInProgress,
		MerchantID: &merchantID,
	}
	contact := unverifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)

			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewMerchantRepository().Return(mockMerchantRepo)

			// The applicant redeems the first email's code even though a
			// fresh one was issued afterwards. The lookup filters by the
			// submitted value, so the earlier row comes back.
			older := &entity.EmailVerificationCode{
				ID:        uuid.New(),
				ContactID: contact.ID,
				Code:      "111111",
				ExpiresAt: time.Now().Add(5 * time.Minute),
				CreatedAt: time.Now().Add(-10 * time.Minute),
			}
			mockCodeRepo.EXPECT().
				FindUsableByContactAndCode(ctx, contact.ID, "111111").
				Return(older, nil)
			mockCodeRepo.EXPECT().MarkUsed(ctx, older.ID).Return(nil)

			mockContactRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Contact")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.VerifyEmailCode(ctx, invite.Token, "111111")

	require.NoError(t, err)
	assert.Equal(t, entity.StepPersonal, output.CurrentStep)
}

func TestVerificationService_VerifyEmailCode_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{
		ID:        uuid.New(),
		PartnerID: invite.PartnerID,
		Status:    entity.SessionStatusInProgress,
	}
	contact := unverifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)

			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewMerchantRepository().Return(mockMerchantRepo)

			code := &entity.EmailVerificationCode{
				ID:        uuid.New(),
				ContactID: contact.ID,
				Code:      "482915",
				ExpiresAt: time.Now().Add(10 * time.Minute),
			}
			mockCodeRepo.EXPECT().FindUsableByContactAndCode(ctx, contact.ID, "482915").Return(code, nil)
			mockCodeRepo.EXPECT().MarkUsed(ctx, code.ID).Return(nil)
			mockContactRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil)
			mockMerchantRepo.EXPECT().CreateMerchant(ctx, mock.AnythingOfType("*entity.Merchant")).Return(nil)
			mockMerchantRepo.EXPECT().
				CreateMerchantUser(ctx, mock.AnythingOfType("*entity.MerchantUser")).
				Return(repository.ErrDuplicateMerchantUser)

			return fn(mockFactory)
		})

	output, err := fx.service.VerifyEmailCode(ctx, invite.Token, "482915")

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Nil(t, output)
}

func TestVerificationService_CreateKYCToken_FirstAttempt(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.kycProvider.EXPECT().
		CreateAccessToken(ctx, session.ID.String()).
		Return(&service.KYCAccessToken{Token: "sdk-token", UserID: session.ID.String()}, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.Equal(t, session.ID.String(), updated.KYCApplicantID)
			assert.Equal(t, entity.KYCStatusPending, updated.KYCStatus)
		}).
		Return(nil)

	output, err := fx.service.CreateKYCToken(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, "sdk-token", output.Token)
	assert.Equal(t, session.ID.String(), output.UserID)
}

func TestVerificationService_CreateKYCToken_FreshIDAfterReset(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.KYCApplicantID = session.ID.String()
	contact.KYCStatus = "" // A prior result was invalidated by an identity edit.
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.kycProvider.EXPECT().
		CreateAccessToken(ctx, mock.MatchedBy(func(externalUserID string) bool {
			return strings.HasPrefix(externalUserID, session.ID.String()+"-rev-")
		})).
		RunAndReturn(func(ctx context.Context, externalUserID string) (*service.KYCAccessToken, error) {
			return &service.KYCAccessToken{Token: "sdk-token-2", UserID: externalUserID}, nil
		})
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.Contains(t, updated.KYCApplicantID, "-rev-")
			assert.Equal(t, entity.KYCStatusPending, updated.KYCStatus)
		}).
		Return(nil)

	output, err := fx.service.CreateKYCToken(ctx, invite.Token)

	require.NoError(t, err)
	assert.Contains(t, output.UserID, "-rev-")
}

func TestVerificationService_CreateKYCToken_NoProvider(t *testing.T) {
	svc := NewVerificationService(VerificationServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		InviteRepo:  mockRepo.NewMockInviteRepository(t),
		SessionRepo: mockRepo.NewMockSessionRepository(t),
		ContactRepo: mockRepo.NewMockContactRepository(t),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	output, err := svc.CreateKYCToken(context.Background(), "invite-token-123")

	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Nil(t, output)
}

func TestVerificationService_CompleteKYC(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.KYCStatus = entity.KYCStatusPending
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.Equal(t, entity.KYCStatusCompleted, updated.KYCStatus)
			assert.Equal(t, entity.StepBusiness, updated.CurrentStep)
		}).
		Return(nil)

	output, err := fx.service.CompleteKYC(ctx, invite.Token, entity.KYCStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.StepBusiness, output.CurrentStep)
}

func TestVerificationService_BankAuthURL_RequiresBankDetails(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	session.Contact = verifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	url, err := fx.service.BankAuthURL(ctx, invite.Token)

	assert.ErrorIs(t, err, domainerrors.ErrStepOrder)
	assert.Empty(t, url)
}

func TestVerificationService_BankAuthURL_StateIsInviteToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.BankSortCode = "04-11-34"
	contact.BankAccountNumber = "12345678"
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.bankProvider.EXPECT().AuthURL(invite.Token).Return("https://auth.example.com/?state=" + invite.Token)

	url, err := fx.service.BankAuthURL(ctx, invite.Token)

	require.NoError(t, err)
	assert.Contains(t, url, invite.Token)
}

func bankCallbackSession(invite *entity.Invite) *entity.BoardingSession {
	session := &entity.BoardingSession{
		ID:        uuid.New(),
		PartnerID: invite.PartnerID,
		InviteID:  invite.ID,
		Status:    entity.SessionStatusInProgress,
	}
	contact := verifiedContact(session.ID)
	contact.BankAccountName = "Analytical Engines Limited"
	contact.BankSortCode = "04-11-34"
	contact.BankAccountNumber = "12345678"
	session.Contact = contact

	return session
}

func TestVerificationService_HandleBankCallback_Verified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := bankCallbackSession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.bankProvider.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	fx.bankProvider.EXPECT().FetchAccounts(ctx, "access-token").Return([]service.ConnectedAccount{
		{DisplayName: "Business Current", SortCode: "041134", AccountNumber: "12345678"},
	}, nil)
	fx.bankProvider.EXPECT().
		VerifyAccount(ctx, "access-token", mock.AnythingOfType("service.AccountDetails")).
		Return(&service.AccountVerification{
			Verified:           true,
			Match:              true,
			AccountHolderNames: []string{"ANALYTICAL ENGINES LTD", "ADA LOVELACE"},
		}, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.True(t, updated.BankVerified)
			assert.True(t, updated.BankAccountMatch)
			assert.Equal(t, 100, updated.BankAccountNameScore)
			assert.Equal(t, 100, updated.BankDirectorScore)
			assert.NotNil(t, updated.BankVerifiedAt)
			assert.Empty(t, updated.BankVerificationMessage)
		}).
		Return(nil)

	output, err := fx.service.HandleBankCallback(ctx, usecase.BankCallbackInput{
		Code:  "auth-code",
		State: invite.Token,
	})

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "/board/"+invite.Token)
	assert.Contains(t, output.RedirectURL, "bank_verified=1")
}

func TestVerificationService_HandleBankCallback_AccountMismatchKeepsScores(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := bankCallbackSession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.bankProvider.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	fx.bankProvider.EXPECT().FetchAccounts(ctx, "access-token").Return([]service.ConnectedAccount{
		{SortCode: "60-16-13", AccountNumber: "99999999"},
	}, nil)
	fx.bankProvider.EXPECT().
		VerifyAccount(ctx, "access-token", mock.AnythingOfType("service.AccountDetails")).
		Return(&service.AccountVerification{
			AccountHolderNames: []string{"ANALYTICAL ENGINES LTD"},
		}, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.False(t, updated.BankVerified)
			assert.False(t, updated.BankAccountMatch)
			// Scores persist even when the account itself does not match.
			assert.Equal(t, 100, updated.BankAccountNameScore)
			assert.NotEmpty(t, updated.BankVerificationMessage)
		}).
		Return(nil)

	output, err := fx.service.HandleBankCallback(ctx, usecase.BankCallbackInput{
		Code:  "auth-code",
		State: invite.Token,
	})

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "bank_verified=0")
}

func TestVerificationService_HandleBankCallback_IBANFallbackMatch(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := bankCallbackSession(invite)
	session.Contact.BankSortCode = "60-16-13"
	session.Contact.BankAccountNumber = "31926819"

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.bankProvider.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	// The bank exposes only an IBAN; the sort code and account number are
	// recovered from it.
	fx.bankProvider.EXPECT().FetchAccounts(ctx, "access-token").Return([]service.ConnectedAccount{
		{IBAN: "GB29NWBK60161331926819"},
	}, nil)
	fx.bankProvider.EXPECT().
		VerifyAccount(ctx, "access-token", mock.AnythingOfType("service.AccountDetails")).
		Return(&service.AccountVerification{
			AccountHolderNames: []string{"ANALYTICAL ENGINES LIMITED", "ADA LOVELACE"},
		}, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.True(t, updated.BankVerified)
			assert.True(t, updated.BankAccountMatch)
		}).
		Return(nil)

	output, err := fx.service.HandleBankCallback(ctx, usecase.BankCallbackInput{
		Code:  "auth-code",
		State: invite.Token,
	})

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "bank_verified=1")
}

func TestVerificationService_HandleBankCallback_VendorError(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := bankCallbackSession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.False(t, updated.BankVerified)
			assert.NotNil(t, updated.BankVerifiedAt)
			assert.Contains(t, updated.BankVerificationMessage, "declined")
		}).
		Return(nil)

	output, err := fx.service.HandleBankCallback(ctx, usecase.BankCallbackInput{
		State: invite.Token,
		Error: "access_denied",
	})

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "bank_verified=0")
	assert.Contains(t, output.RedirectURL, "error=access_denied")
}

func TestVerificationService_HandleBankCallback_SandboxLeniency(t *testing.T) {
	fx := createTestVerificationService(t)
	fx.service = NewVerificationService(VerificationServiceParams{
		TxManager:    fx.txManager,
		InviteRepo:   fx.inviteRepo,
		SessionRepo:  fx.sessionRepo,
		ContactRepo:  fx.contactRepo,
		KYCProvider:  fx.kycProvider,
		BankProvider: fx.bankProvider,
		Config: &config.Config{
			Boarding:    &config.BoardingConfig{FrontendBaseURL: "https://checkout.example.com"},
			OpenBanking: &config.OpenBankingConfig{APIURL: "https://api.truelayer-sandbox.com"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	invite := validInvite()
	session := bankCallbackSession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.bankProvider.EXPECT().ExchangeCode(ctx, "auth-code").Return("access-token", nil)
	// The mock bank's canned account matches neither the submitted
	// identifiers nor, beyond a token or two, the submitted names.
	fx.bankProvider.EXPECT().FetchAccounts(ctx, "access-token").Return([]service.ConnectedAccount{
		{DisplayName: "Mock Current", SortCode: "01-21-31", AccountNumber: "44556677"},
	}, nil)
	fx.bankProvider.EXPECT().
		VerifyAccount(ctx, "access-token", mock.AnythingOfType("service.AccountDetails")).
		Return(&service.AccountVerification{
			AccountHolderNames: []string{"JOHN SANDBOX ENGINES"},
		}, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.True(t, updated.BankVerified)
			assert.True(t, updated.BankAccountMatch)
		}).
		Return(nil)

	output, err := fx.service.HandleBankCallback(ctx, usecase.BankCallbackInput{
		Code:  "auth-code",
		State: invite.Token,
	})

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "bank_verified=1")
}

func TestVerificationService_GetVerifyStatus(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	session.Contact = unverifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.GetVerifyStatus(ctx, invite.Token)

	require.NoError(t, err)
	assert.False(t, output.EmailVerified)
	assert.Equal(t, entity.StepVerify, output.CurrentStep)
}
