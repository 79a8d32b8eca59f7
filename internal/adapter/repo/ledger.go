package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fundly/internal/domain"
	"fundly/internal/infra"
	"fundly/internal/sqlinline"
)

// DonationLedgerPG implements domain.DonationLedger on PostgreSQL.
//
// Both writes of a donation run inside one database transaction: the
// atomic raised increment row-locks the campaign, so two donors arriving
// at once serialize and neither update is lost. If the ledger insert
// fails the increment rolls back with it, keeping the campaign total
// equal to the sum of its transactions at every commit point.
type DonationLedgerPG struct {
	pool *pgxpool.Pool
}

// NewDonationLedger creates a new ledger over the pool.
func NewDonationLedger(pool *pgxpool.Pool) *DonationLedgerPG {
	return &DonationLedgerPG{pool: pool}
}

var _ domain.DonationLedger = (*DonationLedgerPG)(nil)

// Donate appends a transaction for the campaign and bumps its raised total.
func (l *DonationLedgerPG) Donate(ctx context.Context, campaignID string, amount int64, donor, country string) (*domain.Transaction, int64, error) {
	if amount <= 0 {
		return nil, 0, domain.ErrInvalidAmount
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("begin donation: %w", err)
	}
	defer tx.Rollback(ctx)

	var raised int64
	row := tx.QueryRow(ctx, sqlinline.Text(sqlinline.QIncrementRaised), campaignID, amount)
	if err := row.Scan(&raised); err != nil {
		if infra.IsNoRows(err) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("increment raised: %w", err)
	}

	rec := &domain.Transaction{
		CampaignID: campaignID,
		Amount:     amount,
		Donor:      donor,
		Country:    country,
	}
	row = tx.QueryRow(ctx, sqlinline.Text(sqlinline.QInsertTransaction), campaignID, amount, donor, country)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, 0, fmt.Errorf("append transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit donation: %w", err)
	}
	return rec, raised, nil
}
