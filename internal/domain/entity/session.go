// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the coarse lifecycle state of a boarding session.
type SessionStatus string

// The wizard itself only ever assigns in_progress, pending_review, and
// completed. Draft, pending_kyc, and rejected mirror the shared schema and
// are written by the partner-side tooling that reviews finished sessions.
const (
	SessionStatusDraft         SessionStatus = "draft"
	SessionStatusInProgress    SessionStatus = "in_progress"
	SessionStatusPendingKYC    SessionStatus = "pending_kyc"
	SessionStatusPendingReview SessionStatus = "pending_review"
	SessionStatusCompleted     SessionStatus = "completed"
	SessionStatusRejected      SessionStatus = "rejected"
)

// Fine-grained sub-step labels used by the wizard for resumption.
// The label lives on the Contact so an anonymous session (no contact yet)
// has no sub-step.
const (
	StepForm     = "form"
	StepVerify   = "verify"
	StepPersonal = "step2"
	StepIdentity = "step3"
	StepBusiness = "step4"
	StepVolumes  = "step5"
	StepBank     = "step6"
	StepDone     = "done"
)

// BoardingSession is the durable workflow instance tracking one merchant's
// onboarding attempt. All progress state lives here and on the Contact, so
// any stateless handler instance can serve any request for the session.
type BoardingSession struct {
	ID               uuid.UUID
	PartnerID        uuid.UUID
	InviteID         uuid.UUID
	ProductPackageID *uuid.UUID
	MerchantID       *uuid.UUID // Set once the merchant record is materialized.
	Status           SessionStatus
	Stage            int // Coarse numeric step cursor (1-based).
	Contact          *Contact

	// Services agreement artifacts.
	EnvelopeID         string // E-signature envelope, empty until review submission.
	AgreementKey       string // Object key of the generated (unsigned) agreement.
	SignedAgreementKey string // Object key of the signed copy, set by the signing callback.

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Completed reports whether the session has reached its terminal state.
func (s *BoardingSession) Completed() bool {
	return s.Status == SessionStatusCompleted
}
