package domain

import "time"

// DonorRefLen is how many characters of the donor's user id are kept on a
// transaction. Enough for lightweight attribution, not enough to identify.
const DonorRefLen = 6

// Transaction is an immutable donation record linked to a campaign.
// Records are append-only: nothing in the codebase updates or deletes them,
// which makes the transaction log the authoritative ledger for a campaign.
type Transaction struct {
	ID         string
	CampaignID string
	Amount     int64
	Donor      string // truncated donor user id, see DonorRefLen
	Country    string // ISO country code of the donor, best effort
	CreatedAt  time.Time
}

// DonorRef truncates a user id for storage on a transaction.
func DonorRef(userID string) string {
	if len(userID) <= DonorRefLen {
		return userID
	}
	return userID[:DonorRefLen]
}
