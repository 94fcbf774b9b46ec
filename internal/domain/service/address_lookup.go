package service

import "context"

// Address is a single deliverable address returned by a postcode lookup.
type Address struct {
	Line1    string
	Line2    string
	Town     string
	Postcode string
}

// AddressLookupProvider defines the interface for the postcode address
// lookup vendor. The postcode is passed normalised; the provider returns
// every deliverable address it knows for it.
type AddressLookupProvider interface {
	LookupPostcode(ctx context.Context, postcode string) ([]Address, error)
}
