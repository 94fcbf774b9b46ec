package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"regexp"
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
	verificationCodeLength  = 6
	defaultCodeExpiry       = 15 * time.Minute
	defaultFrontendBasePath = "/board/"
)

// boardingService implements the BoardingUsecase interface.
type boardingService struct {
	txManager     repository.TransactionManager
	inviteRepo    repository.InviteRepository
	sessionRepo   repository.SessionRepository
	contactRepo   repository.ContactRepository
	partnerRepo   repository.PartnerRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	qrService     service.QRCodeService
	addressLookup service.AddressLookupProvider
	frontendBase  string
	codeExpiry    time.Duration
	logger        *slog.Logger
}

// BoardingServiceParams holds dependencies for BoardingService, injected by Fx.
type BoardingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	InviteRepo   repository.InviteRepository
	SessionRepo  repository.SessionRepository
	ContactRepo  repository.ContactRepository
	PartnerRepo  repository.PartnerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger

	// The lookup provider is optional; without one, address lookups
	// surface as a provider-unavailable error and applicants type their
	// address in by hand.
	AddressLookup service.AddressLookupProvider `optional:"true"`
}

// NewBoardingService is the constructor for boardingService. It receives all dependencies as interfaces.
func NewBoardingService(params BoardingServiceParams) usecase.BoardingUsecase {
	frontendBase := ""
	codeExpiry := defaultCodeExpiry
	if params.Config != nil && params.Config.Boarding != nil {
		frontendBase = strings.TrimRight(params.Config.Boarding.FrontendBaseURL, "/")
		if params.Config.Boarding.CodeExpiry > 0 {
			codeExpiry = params.Config.Boarding.CodeExpiry
		}
	}

	return &boardingService{
		txManager:     params.TxManager,
		inviteRepo:    params.InviteRepo,
		sessionRepo:   params.SessionRepo,
		contactRepo:   params.ContactRepo,
		partnerRepo:   params.PartnerRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		qrService:     params.QRService,
		addressLookup: params.AddressLookup,
		frontendBase:  frontendBase,
		codeExpiry:    codeExpiry,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *boardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveInvite looks up the invite and its session. A completed session
// stays reachable regardless of invite expiry or revocation, so returning
// applicants can always retrieve their agreement. An invite the partner has
// marked used resolves exactly like a missing one.
func (srv *boardingService) resolveInvite(ctx context.Context, token string) (*entity.Invite, *entity.BoardingSession, error) {
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

// resumeURL builds the wizard link encoded in resume emails and QR codes.
func (srv *boardingService) resumeURL(token string) string {
	return srv.frontendBase + defaultFrontendBasePath + token
}

// GetInviteInfo returns invite resolution plus display data for the wizard landing page.
func (srv *boardingService) GetInviteInfo(ctx context.Context, token string) (*usecase.InviteInfoOutput, error) {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}

	output := &usecase.InviteInfoOutput{
		Token: invite.Token,
		Email: invite.Email,
	}

	partner, err := srv.partnerRepo.FindByID(ctx, invite.PartnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load partner")
	}
	output.PartnerName = partner.Name

	if session != nil {
		output.Completed = session.Completed()
		if session.Contact != nil {
			output.Email = session.Contact.Email
			output.CurrentStep = session.Contact.CurrentStep
		}
		if session.ProductPackageID != nil {
			pkg, err := srv.sessionRepo.FindProductPackage(ctx, *session.ProductPackageID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load product package")
			}
			output.ProductPackage = pkg
		}
	}

	return output, nil
}

// GetSavedData returns the full resumable state for form pre-population.
func (srv *boardingService) GetSavedData(ctx context.Context, token string) (*usecase.SavedDataOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &usecase.SavedDataOutput{}, nil
	}

	return &usecase.SavedDataOutput{
		Session: session,
		Contact: session.Contact,
	}, nil
}

// GetInviteQR renders a QR code image encoding the invite's resume link.
func (srv *boardingService) GetInviteQR(ctx context.Context, token string) ([]byte, error) {
	invite, _, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}

	return srv.qrService.GenerateResumeQR(srv.resumeURL(invite.Token))
}

// ukPostcodePattern accepts the normalised form produced by
// normaliseUKPostcode, with the inner space optional.
var ukPostcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][0-9A-Z]?\s?[0-9][A-Z]{2}$`)

// normaliseUKPostcode uppercases the postcode and rewrites it with the
// single conventional space, so SW1A2AA becomes SW1A 2AA.
func normaliseUKPostcode(postcode string) string {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
	if len(s) >= 5 {
		s = s[:len(s)-3] + " " + s[len(s)-3:]
	}

	return s
}

// LookupAddress finds the deliverable addresses for a UK postcode. The
// endpoint is public, so invalid postcodes are rejected before the vendor
// call. An unconfigured vendor surfaces as a provider-unavailable error and
// the frontend falls back to manual address entry.
func (srv *boardingService) LookupAddress(ctx context.Context, postcode string) ([]usecase.AddressOutput, error) {
	if srv.addressLookup == nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("address lookup is not configured")
	}

	normalised := normaliseUKPostcode(postcode)
	if !ukPostcodePattern.MatchString(normalised) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid UK postcode format")
	}

	addresses, err := srv.addressLookup.LookupPostcode(ctx, normalised)
	if err != nil {
		srv.log(ctx).Error("Address lookup failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrProviderUnavailable.WrapMessage("address lookup is temporarily unavailable")
	}

	output := make([]usecase.AddressOutput, 0, len(addresses))
	for _, address := range addresses {
		output = append(output, usecase.AddressOutput{
			AddressLine1: address.Line1,
			AddressLine2: address.Line2,
			Town:         address.Town,
			Postcode:     address.Postcode,
		})
	}

	return output, nil
}

// SubmitContact handles the first wizard step: it creates the session (if
// absent) and the single contact, and mails a verification code.
func (srv *boardingService) SubmitContact(ctx context.Context, token string, input usecase.SubmitContactInput) (*usecase.StepOutput, error) {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	confirm := strings.ToLower(strings.TrimSpace(input.ConfirmEmail))
	if email == "" || email != confirm {
		return nil, domainerrors.ErrEmailMismatch
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	var contact *entity.Contact
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()
		contactRepo := repoFactory.NewContactRepository()
		codeRepo := repoFactory.NewCodeRepository()

		if session == nil {
			session = &entity.BoardingSession{
				PartnerID: invite.PartnerID,
				InviteID:  invite.ID,
				Status:    entity.SessionStatusInProgress,
				Stage:     1,
			}
			if err := sessionRepo.Create(ctx, session); err != nil {
				return err
			}
		}

		contact = &entity.Contact{
			SessionID:      session.ID,
			Email:          email,
			PasswordHash:   passwordHash,
			LegalFirstName: strings.TrimSpace(input.FirstName),
			LegalLastName:  strings.TrimSpace(input.LastName),
			CurrentStep:    entity.StepVerify,
			InviteToken:    invite.Token,
		}
		if err := contactRepo.Create(ctx, contact); err != nil {
			if errors.Is(err, repository.ErrDuplicateContact) {
				return domainerrors.ErrContactExists
			}

			return err
		}

		return codeRepo.Create(ctx, &entity.EmailVerificationCode{
			ContactID: contact.ID,
			Code:      code,
			ExpiresAt: time.Now().Add(srv.codeExpiry),
		})
	})
	if err != nil {
		return nil, err
	}

	// The contact is committed; a mail failure must not undo it. The
	// applicant can re-trigger delivery through save-for-later.
	if mailErr := srv.mailer.SendVerificationCode(ctx, service.VerificationCodeMail{
		To:        contact.Email,
		FirstName: contact.LegalFirstName,
		Code:      code,
	}); mailErr != nil {
		srv.log(ctx).Error("Failed to send verification code email",
			slog.String("session_id", session.ID.String()),
			slog.String("error", mailErr.Error()),
		)
	}

	return &usecase.StepOutput{
		SessionID:   session.ID.String(),
		CurrentStep: contact.CurrentStep,
	}, nil
}

// SubmitPersonalDetails handles the personal details step. Changing an
// identity-critical field after a completed identity check invalidates that
// check.
func (srv *boardingService) SubmitPersonalDetails(ctx context.Context, token string, input usecase.PersonalDetailsInput) (*usecase.StepOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return nil, err
	}

	details := entity.PersonalDetails{
		LegalFirstName:   input.LegalFirstName,
		LegalLastName:    input.LegalLastName,
		DateOfBirth:      input.DateOfBirth,
		AddressCountry:   input.AddressCountry,
		AddressPostcode:  input.AddressPostcode,
		AddressLine1:     input.AddressLine1,
		AddressLine2:     input.AddressLine2,
		AddressTown:      input.AddressTown,
		PhoneCountryCode: input.PhoneCountryCode,
		PhoneNumber:      input.PhoneNumber,
	}

	critical := entity.IdentityCriticalChanged(contact, details)
	contact.ApplyPersonalDetails(details)
	if critical && contact.KYCStatus != "" {
		srv.log(ctx).Info("Identity-critical change, resetting identity verification",
			slog.String("session_id", session.ID.String()),
		)
		entity.ResetKYC(contact)
	}
	contact.CurrentStep = entity.StepIdentity

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewContactRepository().Update(ctx, contact); err != nil {
			return err
		}

		// Keep the merchant's legal name in sync with the signatory.
		if session.MerchantID != nil {
			merchantRepo := repoFactory.NewMerchantRepository()
			merchant, err := merchantRepo.FindMerchantByID(ctx, *session.MerchantID)
			if err != nil {
				return err
			}
			merchant.LegalName = contact.LegalName()

			return merchantRepo.UpdateMerchant(ctx, merchant)
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

// SubmitBankDetails handles the bank details step, merge-updating the
// optional business and company fields alongside.
func (srv *boardingService) SubmitBankDetails(ctx context.Context, token string, input usecase.BankDetailsInput) (*usecase.StepOutput, error) {
	_, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	contact, err := requireVerifiedContact(session)
	if err != nil {
		return nil, err
	}

	contact.BankAccountName = strings.TrimSpace(input.BankAccountName)
	contact.BankCurrency = strings.TrimSpace(input.BankCurrency)
	contact.BankCountry = strings.TrimSpace(input.BankCountry)
	contact.BankSortCode = strings.TrimSpace(input.BankSortCode)
	contact.BankAccountNumber = strings.TrimSpace(input.BankAccountNumber)
	contact.BankIBAN = strings.TrimSpace(input.BankIBAN)

	applyBusinessFields(contact, &input.Business)
	applyCompanyFields(contact, &input.Company)
	contact.CurrentStep = entity.StepBank

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return &usecase.StepOutput{
		SessionID:   session.ID.String(),
		CurrentStep: contact.CurrentStep,
	}, nil
}

// SaveForLater applies a partial update of any subset of wizard data. No
// step ordering is enforced; the caller's sub-step is stored as-is.
func (srv *boardingService) SaveForLater(ctx context.Context, token string, input usecase.SaveForLaterInput) error {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return err
	}
	if session == nil || session.Contact == nil {
		return domainerrors.ErrContactNotFound
	}
	contact := session.Contact

	if input.Personal != nil {
		contact.ApplyPersonalDetails(entity.PersonalDetails{
			LegalFirstName:   input.Personal.LegalFirstName,
			LegalLastName:    input.Personal.LegalLastName,
			DateOfBirth:      input.Personal.DateOfBirth,
			AddressCountry:   input.Personal.AddressCountry,
			AddressPostcode:  input.Personal.AddressPostcode,
			AddressLine1:     input.Personal.AddressLine1,
			AddressLine2:     input.Personal.AddressLine2,
			AddressTown:      input.Personal.AddressTown,
			PhoneCountryCode: input.Personal.PhoneCountryCode,
			PhoneNumber:      input.Personal.PhoneNumber,
		})
	}
	if input.Business != nil {
		applyBusinessFields(contact, input.Business)
	}
	if input.Company != nil {
		applyCompanyFields(contact, input.Company)
	}
	if input.Bank != nil {
		if input.Bank.BankAccountName != "" {
			contact.BankAccountName = input.Bank.BankAccountName
		}
		if input.Bank.BankCurrency != "" {
			contact.BankCurrency = input.Bank.BankCurrency
		}
		if input.Bank.BankCountry != "" {
			contact.BankCountry = input.Bank.BankCountry
		}
		if input.Bank.BankSortCode != "" {
			contact.BankSortCode = input.Bank.BankSortCode
		}
		if input.Bank.BankAccountNumber != "" {
			contact.BankAccountNumber = input.Bank.BankAccountNumber
		}
		if input.Bank.BankIBAN != "" {
			contact.BankIBAN = input.Bank.BankIBAN
		}
	}
	if input.CurrentStep != "" {
		contact.CurrentStep = input.CurrentStep
	}

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return err
	}

	if input.SendResumeEmail {
		if mailErr := srv.mailer.SendSaveForLater(ctx, service.SaveForLaterMail{
			To:        contact.Email,
			FirstName: contact.LegalFirstName,
			ResumeURL: srv.resumeURL(invite.Token),
		}); mailErr != nil {
			srv.log(ctx).Error("Failed to send save-for-later email",
				slog.String("session_id", session.ID.String()),
				slog.String("error", mailErr.Error()),
			)
		}
	}

	return nil
}

// Login authenticates the contact and issues a session-scoped token.
func (srv *boardingService) Login(ctx context.Context, token string, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	invite, session, err := srv.resolveInvite(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}
	contact := session.Contact

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != contact.Email || !srv.hasher.Check(input.Password, contact.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !contact.EmailVerified() {
		return nil, domainerrors.ErrEmailNotVerified
	}

	accessToken, err := srv.tokenService.GenerateToken(session.ID, contact.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		InviteToken: invite.Token,
		CurrentStep: contact.CurrentStep,
	}, nil
}

// requireVerifiedContact enforces the prerequisite shared by all post-email
// steps: the session must have a contact with a verified email.
func requireVerifiedContact(session *entity.BoardingSession) (*entity.Contact, error) {
	if session == nil || session.Contact == nil {
		return nil, domainerrors.ErrContactNotFound
	}
	if !session.Contact.EmailVerified() {
		return nil, domainerrors.ErrEmailNotVerified
	}

	return session.Contact, nil
}

func applyBusinessFields(contact *entity.Contact, input *usecase.BusinessFieldsInput) {
	if input.VATNumber != "" {
		contact.VATNumber = input.VATNumber
	}
	if input.CustomerIndustry != "" {
		contact.CustomerIndustry = input.CustomerIndustry
	}
	if input.EstimatedMonthlyCardVolume != "" {
		contact.EstimatedMonthlyCardVolume = input.EstimatedMonthlyCardVolume
	}
	if input.AverageTransactionValue != "" {
		contact.AverageTransactionValue = input.AverageTransactionValue
	}
	if input.DeliveryTimeframe != "" {
		contact.DeliveryTimeframe = input.DeliveryTimeframe
	}
	if input.CustomerSupportEmail != "" {
		contact.CustomerSupportEmail = input.CustomerSupportEmail
	}
	if input.CustomerWebsites != "" {
		contact.CustomerWebsites = input.CustomerWebsites
	}
	if input.ProductDescription != "" {
		contact.ProductDescription = input.ProductDescription
	}
}

func applyCompanyFields(contact *entity.Contact, input *usecase.CompanyFieldsInput) {
	if input.CompanyName != "" {
		contact.CompanyName = input.CompanyName
	}
	if input.CompanyNumber != "" {
		contact.CompanyNumber = input.CompanyNumber
	}
	if input.CompanyRegisteredOffice != "" {
		contact.CompanyRegisteredOffice = input.CompanyRegisteredOffice
	}
	if input.CompanyIncorporatedIn != "" {
		contact.CompanyIncorporatedIn = input.CompanyIncorporatedIn
	}
	if input.CompanyIncorporationDate != "" {
		contact.CompanyIncorporationDate = input.CompanyIncorporationDate
	}
	if input.CompanyIndustrySIC != "" {
		contact.CompanyIndustrySIC = input.CompanyIndustrySIC
	}
}

// generateVerificationCode returns a crypto-random numeric code.
func generateVerificationCode() (string, error) {
	const digits = "0123456789"

	code := make([]byte, verificationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		code[i] = digits[n.Int64()]
	}

	return string(code), nil
}
