package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"boarding/config"
	deliverycontext "boarding/internal/delivery/context"
	"boarding/internal/domain/entity"
	domainerrors "boarding/internal/domain/errors"
	"boarding/internal/domain/repository"
	"boarding/internal/domain/service"
	"boarding/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	signingCompleteEvent = "signing_complete"
	agreementContentType = "application/pdf"
	defaultBlankKey      = "agreements/blank/services-agreement.pdf"
)

// agreementService implements the AgreementUsecase interface.
type agreementService struct {
	txManager     repository.TransactionManager
	inviteRepo    repository.InviteRepository
	sessionRepo   repository.SessionRepository
	partnerRepo   repository.PartnerRepository
	renderer      service.AgreementRenderer
	docStore      service.DocumentStore
	signer        service.SignatureProvider
	mailer        service.Mailer
	publisher     service.EventPublisher
	frontendBase  string
	returnURLBase string
	blankKey      string
	logger        *slog.Logger
}

// AgreementServiceParams holds dependencies for AgreementService, injected by Fx.
// The signature provider is optional; without one, review submission
// completes the session synchronously.
type AgreementServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InviteRepo  repository.InviteRepository
	SessionRepo repository.SessionRepository
	PartnerRepo repository.PartnerRepository
	Renderer    service.AgreementRenderer
	DocStore    service.DocumentStore
	Signer      service.SignatureProvider `optional:"true"`
	Mailer      service.Mailer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAgreementService is the constructor for agreementService.
func NewAgreementService(params AgreementServiceParams) usecase.AgreementUsecase {
	frontendBase := ""
	if params.Config != nil && params.Config.Boarding != nil {
		frontendBase = strings.TrimRight(params.Config.Boarding.FrontendBaseURL, "/")
	}
	returnURLBase := ""
	if params.Config != nil && params.Config.ESign != nil {
		returnURLBase = strings.TrimRight(params.Config.ESign.ReturnURLBase, "/")
	}
	blankKey := defaultBlankKey
	if params.Config != nil && params.Config.Documents != nil && params.Config.Documents.ServicesAgreementKey != "" {
		blankKey = params.Config.Documents.ServicesAgreementKey
	}

	return &agreementService{
		txManager:     params.TxManager,
		inviteRepo:    params.InviteRepo,
		sessionRepo:   params.SessionRepo,
		partnerRepo:   params.PartnerRepo,
		renderer:      params.Renderer,
		docStore:      params.DocStore,
		signer:        params.Signer,
		mailer:        params.Mailer,
		publisher:     params.Publisher,
		frontendBase:  frontendBase,
		returnURLBase: returnURLBase,
		blankKey:      blankKey,
		logger:        params.Logger,
	}
}

func (srv *agreementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveInvite mirrors the boarding service's invite resolution rules.
func (srv *agreementService) resolveInvite(ctx context.Context, token string) (*entity.Invite, *entity.BoardingSession, error) {
	invite, err := srv.inviteRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrInviteNotFound) {
			return nil, nil, domainerrors.ErrInviteNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to resolve invite")
	}

	session, err := srv.sessionRepo.FindByInviteID(ctx, invite.ID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil, errors.Wrap(err, "failed to resolve session")
	}
	if session != nil && session.Completed() {
		return invite, session, nil
	}

	if invite.Used() {
		return nil, nil, domainerrors.ErrInviteNotFound
	}
	if invite.Expired(time.Now()) {
		return nil, nil, domainerrors.ErrInviteExpired
	}

	return invite, session, nil
}

func unsignedAgreementKey(sessionID string) string {
	return fmt.Sprintf("agreements/%s/unsigned.pdf", sessionID)
}

func signedAgreementKey(sessionID string) string {
	return fmt.Sprintf("agreements/%s/signed.pdf", sessionID)
}

// renderAgreement produces the agreement PDF from the partner, the given
// contact, and the session's product package. The blank specimen passes a
// placeholder contact instead of a real one.
func (srv *agreementService) renderAgreement(ctx context.Context, invite *entity.Invite, session *entity.BoardingSession, contact *entity.Contact) ([]byte, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, invite.PartnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load partner")
	}

	var pkg *entity.ProductPackage
	if session != nil && session.ProductPackageID != nil {
		pkg, err = srv.sessionRepo.FindProductPackage(ctx, *session.ProductPackageID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load product package")
		}
	}

	return srv.renderer.Render(service.AgreementData{
		Partner:        partner,
		Contact:        contact,
		ProductPackage: pkg,
		GeneratedAt:    time.Now().Format("2 January 2006"),
	})
}

// SubmitReview finalizes the wizard: it renders and stores the agreement,
// then either opens a signing ceremony or, without an e-signature vendor,
// completes the session on the spot.
func (srv *agreementService) SubmitReview(ctx context.Context, token string) (*usecase.SubmitReviewOutput, error) {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session != nil && session.Completed() {
		return &usecase.SubmitReviewOutput{Completed: true}, nil
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return nil, err
	}
	if contact.KYCStatus != entity.KYCStatusCompleted {
		return nil, domainerrors.ErrKYCNotCompleted
	}

	pdf, err := srv.renderAgreement(ctx, invite, session, contact)
	if err != nil {
		return nil, err
	}

	key := unsignedAgreementKey(session.ID.String())
	if err := srv.docStore.Put(ctx, key, pdf, agreementContentType); err != nil {
		return nil, errors.Wrap(err, "failed to store agreement")
	}
	session.AgreementKey = key

	if srv.signer == nil {
		if err := srv.complete(ctx, invite, session, contact); err != nil {
			return nil, err
		}

		return &usecase.SubmitReviewOutput{Completed: true}, nil
	}

	returnURL := fmt.Sprintf("%s/boarding/esign/callback?token=%s&event=%s",
		srv.returnURLBase, invite.Token, signingCompleteEvent)

	envelopeID, err := srv.signer.CreateEnvelope(ctx, service.EnvelopeRequest{
		SignerName:   contact.LegalName(),
		SignerEmail:  contact.Email,
		DocumentName: "Services Agreement",
		DocumentPDF:  pdf,
		ReturnURL:    returnURL,
	})
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("failed to create signing envelope")
	}

	signingURL, err := srv.signer.SigningURL(ctx, envelopeID, contact.LegalName(), contact.Email, returnURL)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("failed to open signing ceremony")
	}

	session.EnvelopeID = envelopeID
	session.Status = entity.SessionStatusPendingReview
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return &usecase.SubmitReviewOutput{SigningURL: signingURL}, nil
}

// HandleSigningCallback processes the e-signature return redirect. Replays
// after completion are a no-op; the applicant is always sent back into the
// wizard.
func (srv *agreementService) HandleSigningCallback(ctx context.Context, token, event string) (*usecase.SigningCallbackOutput, error) {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrEnvelopeNotFound
	}

	redirect := &usecase.SigningCallbackOutput{
		RedirectURL: fmt.Sprintf("%s%s%s?step=%s", srv.frontendBase, defaultFrontendBasePath, invite.Token, entity.StepDone),
	}

	if session.Completed() {
		return redirect, nil
	}
	if event != signingCompleteEvent {
		srv.log(ctx).Info("Signing ceremony did not complete",
			slog.String("session_id", session.ID.String()),
			slog.String("event", event),
		)
		redirect.RedirectURL = fmt.Sprintf("%s%s%s?step=%s",
			srv.frontendBase, defaultFrontendBasePath, invite.Token, session.Contact.CurrentStep)

		return redirect, nil
	}

	// A download failure must not strand the session; the signed copy can
	// be fetched again later from the envelope.
	if srv.signer != nil && session.EnvelopeID != "" {
		if signed, err := srv.signer.DownloadSignedDocument(ctx, session.EnvelopeID); err != nil {
			srv.log(ctx).Error("Failed to download signed agreement",
				slog.String("session_id", session.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			key := signedAgreementKey(session.ID.String())
			if err := srv.docStore.Put(ctx, key, signed, agreementContentType); err != nil {
				srv.log(ctx).Error("Failed to store signed agreement",
					slog.String("session_id", session.ID.String()),
					slog.String("error", err.Error()),
				)
			} else {
				session.SignedAgreementKey = key
			}
		}
	}

	if err := srv.complete(ctx, invite, session, session.Contact); err != nil {
		return nil, err
	}

	return redirect, nil
}

// complete moves the session to its terminal state, then notifies the
// applicant and downstream systems. Notification failures are logged, not
// surfaced; the completion itself is already durable.
func (srv *agreementService) complete(ctx context.Context, invite *entity.Invite, session *entity.BoardingSession, contact *entity.Contact) error {
	now := time.Now()
	session.Status = entity.SessionStatusCompleted
	session.CompletedAt = &now
	contact.CurrentStep = entity.StepDone

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSessionRepository().Update(ctx, session); err != nil {
			return err
		}

		return repoFactory.NewContactRepository().Update(ctx, contact)
	})
	if err != nil {
		return err
	}

	if mailErr := srv.mailer.SendCompletion(ctx, service.CompletionMail{
		To:          contact.Email,
		FirstName:   contact.LegalFirstName,
		CompanyName: contact.CompanyName,
	}); mailErr != nil {
		srv.log(ctx).Error("Failed to send completion email",
			slog.String("session_id", session.ID.String()),
			slog.String("error", mailErr.Error()),
		)
	}

	merchantID := ""
	if session.MerchantID != nil {
		merchantID = session.MerchantID.String()
	}
	if pubErr := srv.publisher.PublishBoardingCompleted(ctx, &service.BoardingCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		SessionID:   session.ID.String(),
		MerchantID:  merchantID,
		PartnerID:   invite.PartnerID.String(),
		CompanyName: contact.CompanyName,
		Email:       contact.Email,
		CompletedAt: now.UTC().Format(time.RFC3339),
	}); pubErr != nil {
		srv.log(ctx).Error("Failed to publish completion event",
			slog.String("session_id", session.ID.String()),
			slog.String("error", pubErr.Error()),
		)
	}

	return nil
}

// RegenerateAgreement re-renders and re-stores the unsigned agreement from
// current data. The session's lifecycle state is untouched.
func (srv *agreementService) RegenerateAgreement(ctx context.Context, token string) error {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return err
	}
	if session == nil || session.Contact == nil {
		return domainerrors.ErrContactNotFound
	}

	pdf, err := srv.renderAgreement(ctx, invite, session, session.Contact)
	if err != nil {
		return err
	}

	key := unsignedAgreementKey(session.ID.String())
	if err := srv.docStore.Put(ctx, key, pdf, agreementContentType); err != nil {
		return errors.Wrap(err, "failed to store agreement")
	}

	if session.AgreementKey != key {
		session.AgreementKey = key

		return srv.sessionRepo.Update(ctx, session)
	}

	return nil
}

// GetAgreementPDF returns the signed agreement when available, otherwise
// the unsigned one.
func (srv *agreementService) GetAgreementPDF(ctx context.Context, token string) ([]byte, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domainerrors.ErrAgreementNotFound
	}

	for _, key := range []string{session.SignedAgreementKey, session.AgreementKey} {
		if key == "" {
			continue
		}

		pdf, err := srv.docStore.Get(ctx, key)
		if err == nil {
			return pdf, nil
		}
		srv.log(ctx).Warn("Stored agreement missing",
			slog.String("session_id", session.ID.String()),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	return nil, domainerrors.ErrAgreementNotFound
}

// GetBlankAgreementPDF returns the partner's blank specimen agreement with
// placeholder contact fields. The rendered copy is cached in the document
// store.
func (srv *agreementService) GetBlankAgreementPDF(ctx context.Context, token string) ([]byte, error) {
	invite, _, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}

	key := srv.blankAgreementKey(invite.PartnerID.String())
	if exists, err := srv.docStore.Exists(ctx, key); err == nil && exists {
		if pdf, err := srv.docStore.Get(ctx, key); err == nil {
			return pdf, nil
		}
	}

	pdf, err := srv.renderAgreement(ctx, invite, nil, entity.BlankContact())
	if err != nil {
		return nil, err
	}

	if err := srv.docStore.Put(ctx, key, pdf, agreementContentType); err != nil {
		srv.log(ctx).Warn("Failed to cache blank agreement",
			slog.String("error", err.Error()),
		)
	}

	return pdf, nil
}

// blankAgreementKey is the cache key for a partner's blank specimen. A
// configured fixed key wins, for single-partner deployments serving a
// pre-uploaded document.
func (srv *agreementService) blankAgreementKey(partnerID string) string {
	if srv.blankKey != defaultBlankKey {
		return srv.blankKey
	}

	return fmt.Sprintf("agreements/blank/%s.pdf", partnerID)
}
