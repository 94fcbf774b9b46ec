package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
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

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager    repository.TransactionManager
	inviteRepo   repository.InviteRepository
	sessionRepo  repository.SessionRepository
	contactRepo  repository.ContactRepository
	kycProvider  service.KYCProvider
	bankProvider service.BankDataProvider
	frontendBase string
	sandbox      bool
	logger       *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
// The vendor providers are optional; an unconfigured vendor surfaces as a
// provider-unavailable error at call time instead of failing startup.
type VerificationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	InviteRepo   repository.InviteRepository
	SessionRepo  repository.SessionRepository
	ContactRepo  repository.ContactRepository
	KYCProvider  service.KYCProvider      `optional:"true"`
	BankProvider service.BankDataProvider `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	frontendBase := ""
	if params.Config != nil && params.Config.Boarding != nil {
		frontendBase = strings.TrimRight(params.Config.Boarding.FrontendBaseURL, "/")
	}
	sandbox := false
	if params.Config != nil && params.Config.OpenBanking != nil {
		sandbox = strings.Contains(strings.ToLower(params.Config.OpenBanking.APIURL), "sandbox")
	}

	return &verificationService{
		txManager:    params.TxManager,
		inviteRepo:   params.InviteRepo,
		sessionRepo:  params.SessionRepo,
		contactRepo:  params.ContactRepo,
		kycProvider:  params.KYCProvider,
		bankProvider: params.BankProvider,
		frontendBase: frontendBase,
		sandbox:      sandbox,
		logger:       params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveInvite mirrors the boarding service's invite resolution rules.
func (srv *verificationService) resolveInvite(ctx context.Context, token string) (*entity.Invite, *entity.BoardingSession, error) {
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

// VerifyEmailCode redeems a verification code. The first successful
// verification also materializes the merchant and its login user; repeat
// calls on an already verified contact are a no-op success.
func (srv *verificationService) VerifyEmailCode(ctx context.Context, token, code string) (*usecase.StepOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrContactNotFound
	}
	contact := session.Contact

	if contact.EmailVerified() {
		return &usecase.StepOutput{
			SessionID:   session.ID.String(),
			CurrentStep: contact.CurrentStep,
		}, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.NewCodeRepository()
		contactRepo := repoFactory.NewContactRepository()
		sessionRepo := repoFactory.NewSessionRepository()
		merchantRepo := repoFactory.NewMerchantRepository()

		match, err := codeRepo.FindUsableByContactAndCode(ctx, contact.ID, strings.TrimSpace(code))
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrVerificationCodeInvalid
			}

			return err
		}
		if err := codeRepo.MarkUsed(ctx, match.ID); err != nil {
			return err
		}

		now := time.Now()
		contact.EmailVerifiedAt = &now
		contact.CurrentStep = entity.StepPersonal
		if err := contactRepo.Update(ctx, contact); err != nil {
			return err
		}

		// Materialize the merchant exactly once per session. The unique
		// email on merchant users guards against the same address being
		// registered through another session.
		if session.MerchantID == nil {
			merchant := &entity.Merchant{
				PartnerID: session.PartnerID,
				LegalName: merchantLegalName(contact),
			}
			if err := merchantRepo.CreateMerchant(ctx, merchant); err != nil {
				return err
			}
			if err := merchantRepo.CreateMerchantUser(ctx, &entity.MerchantUser{
				MerchantID:   merchant.ID,
				Email:        contact.Email,
				PasswordHash: contact.PasswordHash,
				FirstName:    contact.LegalFirstName,
				LastName:     contact.LegalLastName,
			}); err != nil {
				if errors.Is(err, repository.ErrDuplicateMerchantUser) {
					return domainerrors.ErrEmailAlreadyRegistered
				}

				return err
			}

			session.MerchantID = &merchant.ID
			session.Status = entity.SessionStatusInProgress
			if err := sessionRepo.Update(ctx, session); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.StepOutput{
		SessionID:   session.ID.String(),
		CurrentStep: contact.CurrentStep,
	}, nil
}

// GetVerifyStatus reports whether the contact's email has been verified.
func (srv *verificationService) GetVerifyStatus(ctx context.Context, token string) (*usecase.VerifyStatusOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrContactNotFound
	}

	return &usecase.VerifyStatusOutput{
		EmailVerified: session.Contact.EmailVerified(),
		CurrentStep:   session.Contact.CurrentStep,
	}, nil
}

// CreateKYCToken issues an identity verification SDK token. A contact whose
// prior result was invalidated gets a fresh derived external ID so the
// vendor opens a new applicant instead of resuming the stale one.
func (srv *verificationService) CreateKYCToken(ctx context.Context, token string) (*usecase.KYCTokenOutput, error) {
	if srv.kycProvider == nil {
		return nil, domainerrors.ErrProviderUnavailable
	}

	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return nil, err
	}

	externalUserID := session.ID.String()
	if contact.KYCApplicantID != "" && contact.KYCStatus == "" {
		externalUserID = fmt.Sprintf("%s-rev-%d", session.ID, time.Now().UnixMilli())
	}

	accessToken, err := srv.kycProvider.CreateAccessToken(ctx, externalUserID)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("failed to create identity verification token")
	}

	contact.KYCApplicantID = accessToken.UserID
	if contact.KYCStatus == "" {
		contact.KYCStatus = entity.KYCStatusPending
	}
	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return &usecase.KYCTokenOutput{
		Token:  accessToken.Token,
		UserID: accessToken.UserID,
	}, nil
}

// CompleteKYC records the vendor's terminal verdict reported by the SDK.
func (srv *verificationService) CompleteKYC(ctx context.Context, token, status string) (*usecase.StepOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return nil, err
	}

	switch status {
	case entity.KYCStatusCompleted:
		contact.KYCStatus = entity.KYCStatusCompleted
		contact.CurrentStep = entity.StepBusiness
	case entity.KYCStatusRejected:
		contact.KYCStatus = entity.KYCStatusRejected
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown identity verification status")
	}

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return &usecase.StepOutput{
		SessionID:   session.ID.String(),
		CurrentStep: contact.CurrentStep,
	}, nil
}

// BankAuthURL starts the bank ownership check. The invite token rides along
// as the OAuth state so the callback can find its way back to the session.
func (srv *verificationService) BankAuthURL(ctx context.Context, token string) (string, error) {
	if srv.bankProvider == nil {
		return "", domainerrors.ErrProviderUnavailable
	}

	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return "", err
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return "", err
	}
	if contact.BankSortCode == "" || contact.BankAccountNumber == "" {
		return "", domainerrors.ErrStepOrder.WrapMessage("bank details must be submitted before verification")
	}

	return srv.bankProvider.AuthURL(invite.Token), nil
}

// HandleBankCallback finishes the bank ownership check. Vendor failures are
// recorded as an unverified result rather than surfaced as errors, so the
// applicant is always redirected back into the wizard.
func (srv *verificationService) HandleBankCallback(ctx context.Context, input usecase.BankCallbackInput) (*usecase.BankVerificationOutput, error) {
	if srv.bankProvider == nil {
		return nil, domainerrors.ErrProviderUnavailable
	}

	invite, session, err := srv.resolveInvite(ctx, input.State)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrContactNotFound
	}
	contact := session.Contact

	result := bankVerificationResult{}
	if input.Error != "" {
		result.message = "bank authorization was declined: " + input.Error
	} else {
		result = srv.verifyBankAccount(ctx, contact, input.Code)
	}

	now := time.Now()
	contact.BankVerifiedAt = &now
	contact.BankVerified = result.verified
	contact.BankAccountMatch = result.accountMatch
	contact.BankAccountNameScore = result.accountNameScore
	contact.BankDirectorScore = result.directorScore
	contact.BankAccountHolderNames = strings.Join(result.holderNames, "; ")
	contact.BankVerificationMessage = result.message
	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	verifiedFlag := "0"
	if result.verified {
		verifiedFlag = "1"
	}
	srv.log(ctx).Info("Bank verification finished",
		slog.String("session_id", session.ID.String()),
		slog.Bool("verified", result.verified),
		slog.Int("account_name_score", result.accountNameScore),
		slog.Int("director_score", result.directorScore),
	)

	redirectURL := fmt.Sprintf("%s%s%s?step=%s&bank_verified=%s",
		srv.frontendBase, defaultFrontendBasePath, invite.Token, entity.StepBank, verifiedFlag)
	if input.Error != "" {
		redirectURL += "&error=" + url.QueryEscape(input.Error)
	}

	return &usecase.BankVerificationOutput{RedirectURL: redirectURL}, nil
}

type bankVerificationResult struct {
	verified         bool
	accountMatch     bool
	accountNameScore int
	directorScore    int
	holderNames      []string
	message          string
}

// verifyBankAccount runs the three ownership checks: the submitted account
// identifiers must match a connected account, and both the declared account
// holder name and the signatory's legal name must fuzzy-match a holder name
// reported by the vendor.
func (srv *verificationService) verifyBankAccount(ctx context.Context, contact *entity.Contact, code string) bankVerificationResult {
	accessToken, err := srv.bankProvider.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Error("Failed to exchange bank authorization code",
			slog.String("error", err.Error()),
		)

		return bankVerificationResult{message: "failed to connect to the bank"}
	}

	accounts, err := srv.bankProvider.FetchAccounts(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("Failed to list connected bank accounts",
			slog.String("error", err.Error()),
		)

		return bankVerificationResult{message: "bank account verification failed"}
	}

	result := bankVerificationResult{}
	for _, account := range accounts {
		if accountNumbersMatch(contact.BankSortCode, contact.BankAccountNumber,
			account.SortCode, account.AccountNumber, account.IBAN) {
			result.accountMatch = true

			break
		}
	}

	// The sandbox's mock bank returns canned identifiers that rarely line
	// up with what the applicant typed, so take the first connected account
	// there and let the name checks run.
	if !result.accountMatch && srv.sandbox && len(accounts) > 0 {
		result.accountMatch = true
		srv.log(ctx).Info("Sandbox bank environment, auto-matched first connected account")
	}

	result.holderNames = srv.fetchHolderNames(ctx, accessToken, contact)
	result.accountNameScore = bestNameScore(contact.BankAccountName, result.holderNames)
	result.directorScore = bestNameScore(contact.LegalName(), result.holderNames)

	threshold := nameMatchThreshold
	if srv.sandbox {
		threshold = sandboxNameMatchThreshold
	}

	switch {
	case !result.accountMatch:
		result.message = "the submitted account details do not match the connected account"
	case result.accountNameScore < threshold:
		result.message = "the account holder name does not match the connected account"
	case result.directorScore < threshold:
		result.message = "the signatory name does not match the connected account"
	default:
		result.verified = true
	}

	return result
}

// fetchHolderNames collects candidate account holder names: the vendor's
// verification answer when available, falling back to the connected user's
// own name.
func (srv *verificationService) fetchHolderNames(ctx context.Context, accessToken string, contact *entity.Contact) []string {
	verification, err := srv.bankProvider.VerifyAccount(ctx, accessToken, service.AccountDetails{
		AccountHolderName: contact.BankAccountName,
		SortCode:          contact.BankSortCode,
		AccountNumber:     contact.BankAccountNumber,
		IBAN:              contact.BankIBAN,
	})
	if err == nil && len(verification.AccountHolderNames) > 0 {
		return verification.AccountHolderNames
	}
	if err != nil {
		srv.log(ctx).Warn("Bank account verification request failed, falling back to connected user",
			slog.String("error", err.Error()),
		)
	}

	user, err := srv.bankProvider.FetchConnectedUser(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch connected bank user",
			slog.String("error", err.Error()),
		)

		return nil
	}

	return []string{user.FullName}
}

// merchantLegalName picks the best available display name at the moment the
// merchant record is created. Personal details may not be submitted yet.
func merchantLegalName(contact *entity.Contact) string {
	if name := contact.LegalName(); name != "" {
		return name
	}
	if contact.CompanyName != "" {
		return contact.CompanyName
	}

	return contact.Email
}
