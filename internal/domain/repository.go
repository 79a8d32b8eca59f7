package domain

import "context"

// DonationLedger records donations. Implementations must commit the raised
// increment and the ledger append together, so the campaign total always
// equals the sum of its transactions.
type DonationLedger interface {
	// Donate appends a transaction for the campaign and bumps its raised
	// total atomically, returning the stored record and the new total.
	Donate(ctx context.Context, campaignID string, amount int64, donor, country string) (*Transaction, int64, error)
}
