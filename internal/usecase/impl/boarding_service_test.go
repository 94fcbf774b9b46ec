package impl

import (
	"context"
	"io"
	"log/slog"
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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// boardingServiceFixtures holds all test dependencies for boarding service tests.
type boardingServiceFixtures struct {
	service      usecase.BoardingUsecase
	txManager    *mockRepo.MockTransactionManager
	inviteRepo   *mockRepo.MockInviteRepository
	sessionRepo  *mockRepo.MockSessionRepository
	contactRepo  *mockRepo.MockContactRepository
	partnerRepo  *mockRepo.MockPartnerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
	qrService    *mockSvc.MockQRCodeService
}

func createTestBoardingService(t *testing.T) boardingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	inviteRepo := mockRepo.NewMockInviteRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Boarding: &config.BoardingConfig{
			FrontendBaseURL: "https://checkout.example.com",
			CodeExpiry:      15 * time.Minute,
		},
	}

	service := NewBoardingService(BoardingServiceParams{
		TxManager:    txManager,
		InviteRepo:   inviteRepo,
		SessionRepo:  sessionRepo,
		ContactRepo:  contactRepo,
		PartnerRepo:  partnerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		QRService:    qrService,
		Config:       cfg,
		Logger:       logger,
	})

	return boardingServiceFixtures{
		service:      service,
		txManager:    txManager,
		inviteRepo:   inviteRepo,
		sessionRepo:  sessionRepo,
		contactRepo:  contactRepo,
		partnerRepo:  partnerRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
		qrService:    qrService,
	}
}

func validInvite() *entity.Invite {
	return &entity.Invite{
		ID:        uuid.New(),
		PartnerID: uuid.New(),
		Token:     "invite-token-123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func verifiedContact(sessionID uuid.UUID) *entity.Contact {
	now := time.Now()

	return &entity.Contact{
		ID:              uuid.New(),
		SessionID:       sessionID,
		Email:           "ada@example.com",
		PasswordHash:    "hashed_password",
		EmailVerifiedAt: &now,
		CurrentStep:     entity.StepPersonal,
		LegalFirstName:  "Ada",
		LegalLastName:   "Lovelace",
	}
}

func TestBoardingService_SubmitContact_Success(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	input := usecase.SubmitContactInput{
		Email:        "Ada@Example.com",
		ConfirmEmail: "ada@example.com",
		Password:     "Password123!",
		FirstName:    "Ada",
		LastName:     "Lovelace",
	}

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, repository.ErrSessionNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	sessionID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)

			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)

			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BoardingSession")).
				Run(func(ctx context.Context, session *entity.BoardingSession) {
					assert.Equal(t, invite.PartnerID, session.PartnerID)
					assert.Equal(t, invite.ID, session.InviteID)
					assert.Equal(t, entity.SessionStatusInProgress, session.Status)
					session.ID = sessionID
				}).
				Return(nil)

			mockContactRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, contact *entity.Contact) {
					assert.Equal(t, sessionID, contact.SessionID)
					assert.Equal(t, "ada@example.com", contact.Email)
					assert.Equal(t, "hashed_password", contact.PasswordHash)
					assert.Equal(t, entity.StepVerify, contact.CurrentStep)
					contact.ID = uuid.New()
				}).
				Return(nil)

			mockCodeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.EmailVerificationCode")).
				Run(func(ctx context.Context, code *entity.EmailVerificationCode) {
					assert.Len(t, code.Code, 6)
					assert.True(t, code.ExpiresAt.After(time.Now()))
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		SendVerificationCode(ctx, mock.AnythingOfType("service.VerificationCodeMail")).
		Return(nil)

	output, err := fx.service.SubmitContact(ctx, invite.Token, input)

	require.NoError(t, err)
	assert.Equal(t, sessionID.String(), output.SessionID)
	assert.Equal(t, entity.StepVerify, output.CurrentStep)
}

func TestBoardingService_SubmitContact_EmailMismatch(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.SubmitContact(ctx, invite.Token, usecase.SubmitContactInput{
		Email:        "ada@example.com",
		ConfirmEmail: "ada@examp1e.com",
		Password:     "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailMismatch)
	assert.Nil(t, output)
}

func TestBoardingService_SubmitContact_DuplicateContact(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{
		ID:        uuid.New(),
		PartnerID: invite.PartnerID,
		InviteID:  invite.ID,
		Status:    entity.SessionStatusInProgress,
	}

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockCodeRepo := mockRepo.NewMockCodeRepository(t)

			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewCodeRepository().Return(mockCodeRepo)

			mockContactRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Contact")).
				Return(repository.ErrDuplicateContact)

			return fn(mockFactory)
		})

	output, err := fx.service.SubmitContact(ctx, invite.Token, usecase.SubmitContactInput{
		Email:        "ada@example.com",
		ConfirmEmail: "ada@example.com",
		Password:     "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrContactExists)
	assert.Nil(t, output)
}

func TestBoardingService_ResolveInvite_NotFound(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	fx.inviteRepo.EXPECT().FindByToken(ctx, "missing").Return(nil, repository.ErrInviteNotFound)

	output, err := fx.service.GetSavedData(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrInviteNotFound)
	assert.Nil(t, output)
}

func TestBoardingService_ResolveInvite_Expired(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	invite.ExpiresAt = time.Now().Add(-time.Hour)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.GetSavedData(ctx, invite.Token)

	assert.ErrorIs(t, err, domainerrors.ErrInviteExpired)
	assert.Nil(t, output)
}

func TestBoardingService_ResolveInvite_UsedInvite(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	usedAt := time.Now().Add(-time.Hour)
	invite.UsedAt = &usedAt

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.GetSavedData(ctx, invite.Token)

	assert.ErrorIs(t, err, domainerrors.ErrInviteNotFound)
	assert.Nil(t, output)
}

func TestBoardingService_ResolveInvite_UsedButCompleted(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	usedAt := time.Now().Add(-time.Hour)
	invite.UsedAt = &usedAt
	session := &entity.BoardingSession{
		ID:     uuid.New(),
		Status: entity.SessionStatusCompleted,
	}
	session.Contact = verifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.GetSavedData(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, session, output.Session)
}

func TestBoardingService_ResolveInvite_ExpiredButCompleted(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	invite.ExpiresAt = time.Now().Add(-time.Hour)
	session := &entity.BoardingSession{
		ID:     uuid.New(),
		Status: entity.SessionStatusCompleted,
	}
	session.Contact = verifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.GetSavedData(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, session, output.Session)
	assert.Equal(t, session.Contact, output.Contact)
}

func TestBoardingService_GetInviteInfo(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	packageID := uuid.New()
	session := &entity.BoardingSession{
		ID:               uuid.New(),
		Status:           entity.SessionStatusInProgress,
		ProductPackageID: &packageID,
	}
	session.Contact = verifiedContact(session.ID)
	pkg := &entity.ProductPackage{ID: packageID, Name: "Starter"}

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.partnerRepo.EXPECT().FindByID(ctx, invite.PartnerID).Return(&entity.Partner{
		ID:   invite.PartnerID,
		Name: "Acme Payments",
	}, nil)
	fx.sessionRepo.EXPECT().FindProductPackage(ctx, packageID).Return(pkg, nil)

	output, err := fx.service.GetInviteInfo(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, "Acme Payments", output.PartnerName)
	assert.Equal(t, "ada@example.com", output.Email)
	assert.Equal(t, entity.StepPersonal, output.CurrentStep)
	assert.Equal(t, pkg, output.ProductPackage)
	assert.False(t, output.Completed)
}

func TestBoardingService_GetInviteQR(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, repository.ErrSessionNotFound)
	fx.qrService.EXPECT().
		GenerateResumeQR("https://checkout.example.com/board/"+invite.Token).
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.GetInviteQR(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

// lookupService builds a boarding service with just the address lookup
// provider wired, since the other dependencies never come into play.
func lookupService(provider service.AddressLookupProvider) usecase.BoardingUsecase {
	return NewBoardingService(BoardingServiceParams{
		AddressLookup: provider,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestBoardingService_LookupAddress(t *testing.T) {
	provider := mockSvc.NewMockAddressLookupProvider(t)
	provider.EXPECT().LookupPostcode(mock.Anything, "SW1A 2AA").Return([]service.Address{
		{Line1: "10 Downing Street", Town: "LONDON", Postcode: "SW1A 2AA"},
		{Line1: "11 Downing Street", Line2: "Westminster", Town: "LONDON", Postcode: "SW1A 2AA"},
	}, nil)

	// Lower case without the space still reaches the vendor normalised.
	output, err := lookupService(provider).LookupAddress(context.Background(), "sw1a2aa")

	require.NoError(t, err)
	require.Len(t, output, 2)
	assert.Equal(t, "10 Downing Street", output[0].AddressLine1)
	assert.Equal(t, "LONDON", output[0].Town)
	assert.Equal(t, "SW1A 2AA", output[0].Postcode)
	assert.Equal(t, "Westminster", output[1].AddressLine2)
}

func TestBoardingService_LookupAddress_InvalidPostcode(t *testing.T) {
	provider := mockSvc.NewMockAddressLookupProvider(t)

	output, err := lookupService(provider).LookupAddress(context.Background(), "not a postcode")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestBoardingService_LookupAddress_Unconfigured(t *testing.T) {
	output, err := lookupService(nil).LookupAddress(context.Background(), "SW1A 2AA")

	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Nil(t, output)
}

func TestBoardingService_LookupAddress_VendorDown(t *testing.T) {
	provider := mockSvc.NewMockAddressLookupProvider(t)
	provider.EXPECT().
		LookupPostcode(mock.Anything, "SW1A 2AA").
		Return(nil, errors.New("address lookup credit has run out"))

	output, err := lookupService(provider).LookupAddress(context.Background(), "SW1A 2AA")

	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Nil(t, output)
}

func TestBoardingService_SubmitPersonalDetails_RequiresVerifiedEmail(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	session.Contact = &entity.Contact{ID: uuid.New(), SessionID: session.ID, Email: "ada@example.com"}

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.SubmitPersonalDetails(ctx, invite.Token, usecase.PersonalDetailsInput{})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	assert.Nil(t, output)
}

func TestBoardingService_SubmitPersonalDetails_CriticalChangeResetsKYC(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	merchantID := uuid.New()
	session := &entity.BoardingSession{
		ID:         uuid.New(),
		Status:     entity.SessionStatusInProgress,
		MerchantID: &merchantID,
	}
	contact := verifiedContact(session.ID)
	contact.KYCApplicantID = "applicant-123"
	contact.KYCStatus = entity.KYCStatusCompleted
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)
			mockMerchantRepo := mockRepo.NewMockMerchantRepository(t)

			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockFactory.EXPECT().NewMerchantRepository().Return(mockMerchantRepo)

			mockContactRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, updated *entity.Contact) {
					assert.Empty(t, updated.KYCStatus)
					assert.Equal(t, "applicant-123", updated.KYCApplicantID)
					assert.Equal(t, entity.StepIdentity, updated.CurrentStep)
				}).
				Return(nil)

			mockMerchantRepo.EXPECT().
				FindMerchantByID(ctx, merchantID).
				Return(&entity.Merchant{ID: merchantID, LegalName: "Ada Lovelace"}, nil)
			mockMerchantRepo.EXPECT().
				UpdateMerchant(ctx, mock.AnythingOfType("*entity.Merchant")).
				Run(func(ctx context.Context, merchant *entity.Merchant) {
					assert.Equal(t, "Augusta King", merchant.LegalName)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.SubmitPersonalDetails(ctx, invite.Token, usecase.PersonalDetailsInput{
		LegalFirstName: "Augusta",
		LegalLastName:  "King",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StepIdentity, output.CurrentStep)
}

func TestBoardingService_SubmitPersonalDetails_PhoneChangeKeepsKYC(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.KYCStatus = entity.KYCStatusCompleted
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)
			mockContactRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, updated *entity.Contact) {
					assert.Equal(t, entity.KYCStatusCompleted, updated.KYCStatus)
					assert.Equal(t, "+44", updated.PhoneCountryCode)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := fx.service.SubmitPersonalDetails(ctx, invite.Token, usecase.PersonalDetailsInput{
		LegalFirstName:   "Ada",
		LegalLastName:    "Lovelace",
		PhoneCountryCode: "+44",
		PhoneNumber:      "7700900123",
	})

	require.NoError(t, err)
}

func TestBoardingService_SubmitBankDetails_MergesOptionalFields(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.CompanyName = "Analytical Engines Ltd"
	contact.VATNumber = "GB123456789"
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.Equal(t, "04-11-34", updated.BankSortCode)
			assert.Equal(t, "12345678", updated.BankAccountNumber)
			// Empty inputs must not clobber stored values.
			assert.Equal(t, "Analytical Engines Ltd", updated.CompanyName)
			assert.Equal(t, "GB123456789", updated.VATNumber)
			assert.Equal(t, "retail", updated.CustomerIndustry)
			assert.Equal(t, entity.StepBank, updated.CurrentStep)
		}).
		Return(nil)

	output, err := fx.service.SubmitBankDetails(ctx, invite.Token, usecase.BankDetailsInput{
		BankAccountName:   "Analytical Engines Ltd",
		BankSortCode:      "04-11-34",
		BankAccountNumber: "12345678",
		Business: usecase.BusinessFieldsInput{
			CustomerIndustry: "retail",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StepBank, output.CurrentStep)
}

func TestBoardingService_SaveForLater_PartialUpdate(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, updated *entity.Contact) {
			assert.Equal(t, "Babbage & Co", updated.CompanyName)
			assert.Equal(t, entity.StepBusiness, updated.CurrentStep)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendSaveForLater(ctx, mock.AnythingOfType("service.SaveForLaterMail")).
		Return(nil)

	err := fx.service.SaveForLater(ctx, invite.Token, usecase.SaveForLaterInput{
		CurrentStep: entity.StepBusiness,
		Company: &usecase.CompanyFieldsInput{
			CompanyName: "Babbage & Co",
		},
		SendResumeEmail: true,
	})

	require.NoError(t, err)
}

func TestBoardingService_Login_Success(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.CurrentStep = entity.StepBank
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(session.ID, contact.Email).Return("jwt-token", nil)

	output, err := fx.service.Login(ctx, invite.Token, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", output.AccessToken)
	assert.Equal(t, invite.Token, output.InviteToken)
	assert.Equal(t, entity.StepBank, output.CurrentStep)
}

func TestBoardingService_Login_WrongPassword(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	session.Contact = verifiedContact(session.ID)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, invite.Token, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestBoardingService_Login_UnverifiedEmail(t *testing.T) {
	fx := createTestBoardingService(t)

	ctx := context.Background()
	invite := validInvite()
	session := &entity.BoardingSession{ID: uuid.New(), Status: entity.SessionStatusInProgress}
	contact := verifiedContact(session.ID)
	contact.EmailVerifiedAt = nil
	session.Contact = contact

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, invite.Token, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	assert.Nil(t, output)
}
