package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

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

// agreementServiceFixtures holds all test dependencies for agreement service tests.
type agreementServiceFixtures struct {
	service     usecase.AgreementUsecase
	txManager   *mockRepo.MockTransactionManager
	inviteRepo  *mockRepo.MockInviteRepository
	sessionRepo *mockRepo.MockSessionRepository
	partnerRepo *mockRepo.MockPartnerRepository
	renderer    *mockSvc.MockAgreementRenderer
	docStore    *mockSvc.MockDocumentStore
	signer      *mockSvc.MockSignatureProvider
	mailer      *mockSvc.MockMailer
	publisher   *mockSvc.MockEventPublisher
}

func createTestAgreementService(t *testing.T, withSigner bool) agreementServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	inviteRepo := mockRepo.NewMockInviteRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	renderer := mockSvc.NewMockAgreementRenderer(t)
	docStore := mockSvc.NewMockDocumentStore(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	params := AgreementServiceParams{
		TxManager:   txManager,
		InviteRepo:  inviteRepo,
		SessionRepo: sessionRepo,
		PartnerRepo: partnerRepo,
		Renderer:    renderer,
		DocStore:    docStore,
		Mailer:      mailer,
		Publisher:   publisher,
		Config: &config.Config{
			Boarding: &config.BoardingConfig{FrontendBaseURL: "https://checkout.example.com"},
			ESign:    &config.ESignConfig{ReturnURLBase: "https://api.example.com"},
		},
		Logger: logger,
	}

	fixtures := agreementServiceFixtures{
		txManager:   txManager,
		inviteRepo:  inviteRepo,
		sessionRepo: sessionRepo,
		partnerRepo: partnerRepo,
		renderer:    renderer,
		docStore:    docStore,
		mailer:      mailer,
		publisher:   publisher,
	}
	if withSigner {
		fixtures.signer = mockSvc.NewMockSignatureProvider(t)
		params.Signer = fixtures.signer
	}
	fixtures.service = NewAgreementService(params)

	return fixtures
}

func reviewReadySession(invite *entity.Invite) *entity.BoardingSession {
	session := &entity.BoardingSession{
		ID:        uuid.New(),
		PartnerID: invite.PartnerID,
		InviteID:  invite.ID,
		Status:    entity.SessionStatusInProgress,
	}
	contact := verifiedContact(session.ID)
	contact.KYCStatus = entity.KYCStatusCompleted
	contact.CompanyName = "Analytical Engines Ltd"
	session.Contact = contact

	return session
}

func expectCompletion(t *testing.T, fx agreementServiceFixtures, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockSessionRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.BoardingSession")).
				Run(func(ctx context.Context, session *entity.BoardingSession) {
					assert.Equal(t, entity.SessionStatusCompleted, session.Status)
					assert.NotNil(t, session.CompletedAt)
				}).
				Return(nil)
			mockContactRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, contact *entity.Contact) {
					assert.Equal(t, entity.StepDone, contact.CurrentStep)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		SendCompletion(ctx, mock.AnythingOfType("service.CompletionMail")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishBoardingCompleted(ctx, mock.AnythingOfType("*service.BoardingCompletedEvent")).
		Return(nil)
}

func TestAgreementService_SubmitReview_CompletesWithoutSigner(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.partnerRepo.EXPECT().FindByID(ctx, invite.PartnerID).Return(&entity.Partner{
		ID:   invite.PartnerID,
		Name: "Acme Payments",
	}, nil)
	fx.renderer.EXPECT().
		Render(mock.AnythingOfType("service.AgreementData")).
		Return([]byte("%PDF-agreement"), nil)
	fx.docStore.EXPECT().
		Put(ctx, "agreements/"+session.ID.String()+"/unsigned.pdf", []byte("%PDF-agreement"), "application/pdf").
		Return(nil)
	expectCompletion(t, fx, ctx)

	output, err := fx.service.SubmitReview(ctx, invite.Token)

	require.NoError(t, err)
	assert.True(t, output.Completed)
	assert.Empty(t, output.SigningURL)
	assert.Equal(t, entity.SessionStatusCompleted, session.Status)
}

func TestAgreementService_SubmitReview_OpensSigningCeremony(t *testing.T) {
	fx := createTestAgreementService(t, true)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.partnerRepo.EXPECT().FindByID(ctx, invite.PartnerID).Return(&entity.Partner{
		ID:   invite.PartnerID,
		Name: "Acme Payments",
	}, nil)
	fx.renderer.EXPECT().
		Render(mock.AnythingOfType("service.AgreementData")).
		Return([]byte("%PDF-agreement"), nil)
	fx.docStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("%PDF-agreement"), "application/pdf").
		Return(nil)

	fx.signer.EXPECT().
		CreateEnvelope(ctx, mock.AnythingOfType("service.EnvelopeRequest")).
		Run(func(ctx context.Context, req service.EnvelopeRequest) {
			assert.Equal(t, "Ada Lovelace", req.SignerName)
			assert.Equal(t, "ada@example.com", req.SignerEmail)

			// The return URL must land on the signing callback route the
			// server actually serves, with the token riding along.
			parsed, err := url.Parse(req.ReturnURL)
			require.NoError(t, err)
			assert.Equal(t, "/boarding/esign/callback", parsed.Path)
			assert.Equal(t, invite.Token, parsed.Query().Get("token"))
			assert.Equal(t, "signing_complete", parsed.Query().Get("event"))
		}).
		Return("envelope-1", nil)
	fx.signer.EXPECT().
		SigningURL(ctx, "envelope-1", "Ada Lovelace", "ada@example.com", mock.AnythingOfType("string")).
		Return("https://sign.example.com/ceremony", nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.BoardingSession")).
		Run(func(ctx context.Context, updated *entity.BoardingSession) {
			assert.Equal(t, "envelope-1", updated.EnvelopeID)
			assert.Equal(t, entity.SessionStatusPendingReview, updated.Status)
			assert.NotEmpty(t, updated.AgreementKey)
		}).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, invite.Token)

	require.NoError(t, err)
	assert.False(t, output.Completed)
	assert.Equal(t, "https://sign.example.com/ceremony", output.SigningURL)
}

func TestAgreementService_SubmitReview_RequiresCompletedKYC(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.Contact.KYCStatus = entity.KYCStatusPending

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.SubmitReview(ctx, invite.Token)

	assert.ErrorIs(t, err, domainerrors.ErrKYCNotCompleted)
	assert.Nil(t, output)
}

func TestAgreementService_HandleSigningCallback_CompletesAndStoresSignedCopy(t *testing.T) {
	fx := createTestAgreementService(t, true)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.Status = entity.SessionStatusPendingReview
	session.EnvelopeID = "envelope-1"
	session.AgreementKey = "agreements/" + session.ID.String() + "/unsigned.pdf"

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.signer.EXPECT().DownloadSignedDocument(ctx, "envelope-1").Return([]byte("%PDF-signed"), nil)
	fx.docStore.EXPECT().
		Put(ctx, "agreements/"+session.ID.String()+"/signed.pdf", []byte("%PDF-signed"), "application/pdf").
		Return(nil)
	expectCompletion(t, fx, ctx)

	output, err := fx.service.HandleSigningCallback(ctx, invite.Token, "signing_complete")

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "/board/"+invite.Token)
	assert.Contains(t, output.RedirectURL, "step=done")
	assert.Equal(t, "agreements/"+session.ID.String()+"/signed.pdf", session.SignedAgreementKey)
}

func TestAgreementService_HandleSigningCallback_ReplayIsNoop(t *testing.T) {
	fx := createTestAgreementService(t, true)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.Status = entity.SessionStatusCompleted
	session.EnvelopeID = "envelope-1"

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.HandleSigningCallback(ctx, invite.Token, "signing_complete")

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "step=done")
}

func TestAgreementService_HandleSigningCallback_DeclinedDoesNotComplete(t *testing.T) {
	fx := createTestAgreementService(t, true)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.Status = entity.SessionStatusPendingReview
	session.EnvelopeID = "envelope-1"
	session.Contact.CurrentStep = entity.StepBank

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	output, err := fx.service.HandleSigningCallback(ctx, invite.Token, "decline")

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, "step="+entity.StepBank)
	assert.Equal(t, entity.SessionStatusPendingReview, session.Status)
}

func TestAgreementService_GetAgreementPDF_PrefersSignedCopy(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.AgreementKey = "agreements/" + session.ID.String() + "/unsigned.pdf"
	session.SignedAgreementKey = "agreements/" + session.ID.String() + "/signed.pdf"

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.docStore.EXPECT().Get(ctx, session.SignedAgreementKey).Return([]byte("%PDF-signed"), nil)

	pdf, err := fx.service.GetAgreementPDF(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-signed"), pdf)
}

func TestAgreementService_GetAgreementPDF_NotFound(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)

	pdf, err := fx.service.GetAgreementPDF(ctx, invite.Token)

	assert.ErrorIs(t, err, domainerrors.ErrAgreementNotFound)
	assert.Nil(t, pdf)
}

func TestAgreementService_RegenerateAgreement_KeepsLifecycleState(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()
	session := reviewReadySession(invite)
	session.AgreementKey = "agreements/" + session.ID.String() + "/unsigned.pdf"

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(session, nil)
	fx.partnerRepo.EXPECT().FindByID(ctx, invite.PartnerID).Return(&entity.Partner{ID: invite.PartnerID}, nil)
	fx.renderer.EXPECT().
		Render(mock.AnythingOfType("service.AgreementData")).
		Return([]byte("%PDF-regenerated"), nil)
	fx.docStore.EXPECT().
		Put(ctx, session.AgreementKey, []byte("%PDF-regenerated"), "application/pdf").
		Return(nil)

	err := fx.service.RegenerateAgreement(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusInProgress, session.Status)
}

func TestAgreementService_GetBlankAgreementPDF_RendersPlaceholderContact(t *testing.T) {
	fx := createTestAgreementService(t, false)

	ctx := context.Background()
	invite := validInvite()

	fx.inviteRepo.EXPECT().FindByToken(ctx, invite.Token).Return(invite, nil)
	fx.sessionRepo.EXPECT().FindByInviteID(ctx, invite.ID).Return(nil, nil)
	fx.docStore.EXPECT().
		Exists(ctx, "agreements/blank/"+invite.PartnerID.String()+".pdf").
		Return(false, nil)
	fx.partnerRepo.EXPECT().FindByID(ctx, invite.PartnerID).Return(&entity.Partner{
		ID:   invite.PartnerID,
		Name: "Acme Payments",
	}, nil)
	fx.renderer.EXPECT().
		Render(mock.AnythingOfType("service.AgreementData")).
		Run(func(data service.AgreementData) {
			require.NotNil(t, data.Contact)
			assert.Equal(t, entity.AgreementPlaceholder, data.Contact.CompanyName)
			assert.Equal(t, entity.AgreementPlaceholder, data.Contact.LegalName())
			assert.Equal(t, entity.AgreementPlaceholder, data.Contact.BankSortCode)
			assert.Equal(t, "Acme Payments", data.Partner.Name)
		}).
		Return([]byte("%PDF-blank"), nil)
	fx.docStore.EXPECT().
		Put(ctx, "agreements/blank/"+invite.PartnerID.String()+".pdf", []byte("%PDF-blank"), "application/pdf").
		Return(nil)

	pdf, err := fx.service.GetBlankAgreementPDF(ctx, invite.Token)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-blank"), pdf)
}
