package service

import (
	"context"
)

// BoardingCompletedEvent is published when a session reaches its terminal
// state, so downstream systems (provisioning, CRM) can pick the merchant up.
type BoardingCompletedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	SessionID   string `json:"session_id"`
	MerchantID  string `json:"merchant_id"`
	PartnerID   string `json:"partner_id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	CompletedAt string `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBoardingCompleted publishes a completion event for async processing
	PublishBoardingCompleted(ctx context.Context, event *BoardingCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
