// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boarding/internal/delivery/http/middleware"
	"boarding/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers injected by Fx.
type RouterParams struct {
	fx.In

	BoardingHandler     *handler.BoardingHandler
	VerificationHandler *handler.VerificationHandler
	AgreementHandler    *handler.AgreementHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	boardingHandler     *handler.BoardingHandler
	verificationHandler *handler.VerificationHandler
	agreementHandler    *handler.AgreementHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		boardingHandler:     params.BoardingHandler,
		verificationHandler: params.VerificationHandler,
		agreementHandler:    params.AgreementHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the wizard routes. Every route except the
// address lookup carries the invite token as a query parameter, so the
// wizard frontend needs no session state beyond the invite link itself.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	boardingGroup := e.Group("/boarding")
	{
		// Invite resolution and resumable state
		boardingGroup.GET("/invite-info", r.boardingHandler.GetInviteInfo)
		boardingGroup.GET("/saved-data", r.boardingHandler.GetSavedData)
		boardingGroup.GET("/invite-qr", r.boardingHandler.GetInviteQR)

		// Public postcode address lookup for the personal details form
		boardingGroup.GET("/address-lookup", r.boardingHandler.GetAddressLookup)

		// Wizard step submissions
		boardingGroup.POST("/step/1", r.boardingHandler.SubmitContact)
		boardingGroup.POST("/step/2", r.boardingHandler.SubmitPersonalDetails)
		boardingGroup.POST("/step/6", r.boardingHandler.SubmitBankDetails)
		boardingGroup.POST("/save-for-later", r.boardingHandler.SaveForLater)
		boardingGroup.POST("/login", r.boardingHandler.Login)

		// Email verification
		boardingGroup.POST("/verify-email-code", r.verificationHandler.VerifyEmailCode)
		boardingGroup.GET("/verify-status", r.verificationHandler.GetVerifyStatus)

		// Identity verification
		boardingGroup.POST("/kyc/token", r.verificationHandler.CreateKYCToken)
		boardingGroup.POST("/kyc/complete", r.verificationHandler.CompleteKYC)

		// Bank account verification. The callback is registered for both
		// methods because some vendors redirect with a form POST.
		boardingGroup.GET("/bank/auth-url", r.verificationHandler.BankAuthURL)
		boardingGroup.GET("/bank/callback", r.verificationHandler.BankCallback)
		boardingGroup.POST("/bank/callback", r.verificationHandler.BankCallback)

		// Services agreement
		boardingGroup.POST("/submit-review", r.agreementHandler.SubmitReview)
		boardingGroup.GET("/esign/callback", r.agreementHandler.SigningCallback)
		boardingGroup.POST("/regenerate-agreement", r.agreementHandler.RegenerateAgreement)
		boardingGroup.GET("/agreement-pdf", r.agreementHandler.GetAgreementPDF)
		boardingGroup.GET("/blank-agreement-pdf", r.agreementHandler.GetBlankAgreementPDF)
	}

	// Authenticated surface for logged-in contacts. The same saved-data
	// view is exposed here behind the session bearer token.
	sessionGroup := e.Group("/boarding/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/saved-data", r.boardingHandler.GetSavedData)
	}
}
