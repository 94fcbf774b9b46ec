package service

import "context"

// ConnectedUser is the bank-verified identity of the applicant who
// authorized the data connection.
type ConnectedUser struct {
	FullName string
}

// AccountVerification is the vendor's answer for one candidate account
// holder name against the submitted account details.
type AccountVerification struct {
	Verified           bool
	Match              bool
	AccountHolderNames []string
}

// AccountDetails identifies the bank account the applicant claims to own.
type AccountDetails struct {
	AccountHolderName string
	SortCode          string
	AccountNumber     string
	IBAN              string
}

// ConnectedAccount is one account visible through the authorized data
// connection. Depending on the bank, identifiers may come as a sort code
// and account number pair, an IBAN, or both.
type ConnectedAccount struct {
	DisplayName   string
	SortCode      string
	AccountNumber string
	IBAN          string
}

// BankDataProvider defines the interface for the open banking vendor used
// to verify ownership of the settlement account.
type BankDataProvider interface {
	// AuthURL builds the user-facing authorization URL. The state value is
	// round-tripped through the vendor and returned on the callback.
	AuthURL(state string) string

	// ExchangeCode swaps an authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchConnectedUser retrieves the identity of the connected bank user.
	FetchConnectedUser(ctx context.Context, accessToken string) (*ConnectedUser, error)

	// FetchAccounts lists the accounts visible through the connection.
	FetchAccounts(ctx context.Context, accessToken string) ([]ConnectedAccount, error)

	// VerifyAccount asks the vendor whether the connected user owns an
	// account matching the given details under the given holder name.
	VerifyAccount(ctx context.Context, accessToken string, details AccountDetails) (*AccountVerification, error)
}
