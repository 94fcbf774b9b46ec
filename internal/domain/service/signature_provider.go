package service

import "context"

// EnvelopeRequest describes a single-signer agreement to be sent for signature.
type EnvelopeRequest struct {
	SignerName   string
	SignerEmail  string
	DocumentName string
	DocumentPDF  []byte
	ReturnURL    string
}

// SignatureProvider defines the interface for the e-signature vendor.
type SignatureProvider interface {
	// CreateEnvelope submits a document for signing and returns the envelope ID.
	CreateEnvelope(ctx context.Context, req EnvelopeRequest) (string, error)

	// SigningURL returns the embedded signing ceremony URL for an envelope.
	SigningURL(ctx context.Context, envelopeID, signerName, signerEmail, returnURL string) (string, error)

	// DownloadSignedDocument retrieves the combined signed document for an envelope.
	DownloadSignedDocument(ctx context.Context, envelopeID string) ([]byte, error)
}
