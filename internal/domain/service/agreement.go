package service

import (
	"context"

	"boarding/internal/domain/entity"
)

// AgreementData is everything the services agreement template needs.
// A blank agreement passes placeholder contact fields.
type AgreementData struct {
	Partner        *entity.Partner
	Contact        *entity.Contact
	ProductPackage *entity.ProductPackage
	GeneratedAt    string
}

// AgreementRenderer defines the interface for producing the services
// agreement PDF from boarding data.
type AgreementRenderer interface {
	// Render produces the agreement PDF bytes.
	Render(data AgreementData) ([]byte, error)
}

// DocumentStore defines the interface for durable storage of agreement
// artifacts (unsigned and signed PDFs).
type DocumentStore interface {
	// Put writes a document under the given object key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get reads a document by object key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether an object key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
