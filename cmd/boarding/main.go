package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"boarding/config"
	"boarding/internal/delivery"
	"boarding/internal/delivery/http"
	"boarding/internal/delivery/http/middleware"
	"boarding/internal/delivery/http/router/handler"
	"boarding/internal/domain/service"
	"boarding/internal/infra/addresslookup"
	"boarding/internal/infra/agreement"
	"boarding/internal/infra/auth"
	"boarding/internal/infra/docstore"
	"boarding/internal/infra/esign"
	"boarding/internal/infra/kyc"
	logs "boarding/internal/infra/log"
	"boarding/internal/infra/mail"
	"boarding/internal/infra/openbanking"
	"boarding/internal/infra/persistence/postgres"
	"boarding/internal/infra/pubsub"
	"boarding/internal/infra/qrcode"
	"boarding/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewInviteRepository,
			postgres.NewSessionRepository,
			postgres.NewContactRepository,
			postgres.NewCodeRepository,
			postgres.NewMerchantRepository,
			postgres.NewPartnerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			agreement.NewPDFRenderer,
			docstore.NewBlobStore,
			pubsub.NewEventPublisher,
			newQRCodeService,
			newKYCProvider,
			newBankDataProvider,
			newAddressLookupProvider,
			newSignatureProvider,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newKYCProvider creates the identity verification provider when configured
func newKYCProvider(cfg *config.Config, logger *slog.Logger) (service.KYCProvider, error) {
	if cfg.KYC == nil {
		return nil, nil // identity verification is optional
	}

	provider, err := kyc.NewSumsubProvider(kyc.Params{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create KYC provider: %w", err)
	}

	return provider, nil
}

// newBankDataProvider creates the open-banking provider when configured
func newBankDataProvider(cfg *config.Config, logger *slog.Logger) (service.BankDataProvider, error) {
	if cfg.OpenBanking == nil {
		return nil, nil // bank account verification is optional
	}

	provider, err := openbanking.NewTrueLayerProvider(openbanking.Params{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create open-banking provider: %w", err)
	}

	return provider, nil
}

// newAddressLookupProvider creates the postcode lookup provider when configured
func newAddressLookupProvider(cfg *config.Config, logger *slog.Logger) (service.AddressLookupProvider, error) {
	if cfg.AddressLookup == nil {
		return nil, nil // postcode lookup is optional
	}

	provider, err := addresslookup.NewIdealPostcodesProvider(addresslookup.Params{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create address lookup provider: %w", err)
	}

	return provider, nil
}

// newSignatureProvider creates the e-signature provider when configured.
// Without one, review submissions complete sessions synchronously.
func newSignatureProvider(cfg *config.Config, logger *slog.Logger) (service.SignatureProvider, error) {
	if cfg.ESign == nil {
		return nil, nil
	}

	provider, err := esign.NewDocuSignProvider(esign.Params{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create e-signature provider: %w", err)
	}

	return provider, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBoardingService,
			impl.NewVerificationService,
			impl.NewAgreementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBoardingHandler,
			handler.NewVerificationHandler,
			handler.NewAgreementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
