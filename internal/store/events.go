package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
)

// insertBatchSize keeps multi-row inserts below placeholder limits on every driver.
const insertBatchSize = 500

func insertBatched(ctx context.Context, ms *SQLStore, table string, rows []map[string]any) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if err := BulkInsert(ctx, ms.db, table, rows[start:end]); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

// InsertClicks stores click events, assigning ids to those without one.
func (ms *SQLStore) InsertClicks(ctx context.Context, clicks []entity.Click) error {
	rows := make([]map[string]any, 0, len(clicks))
	for _, c := range clicks {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		rows = append(rows, map[string]any{
			"id":           c.ID,
			"publisher_id": c.PublisherID,
			"offer_id":     c.OfferID,
			"link_id":      c.LinkID,
			"geo":          c.Geo,
			"device":       c.Device,
			"browser":      c.Browser,
			"is_unique":    c.IsUnique,
			"created_at":   c.CreatedAt.UTC(),
		})
	}
	return insertBatched(ctx, ms, "clicks", rows)
}

// InsertConversions stores conversion events, assigning ids to those without one.
func (ms *SQLStore) InsertConversions(ctx context.Context, conversions []entity.Conversion) error {
	rows := make([]map[string]any, 0, len(conversions))
	for _, c := range conversions {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Status == "" {
			c.Status = entity.ConversionPending
		}
		rows = append(rows, map[string]any{
			"id":                c.ID,
			"click_id":          c.ClickID,
			"offer_id":          c.OfferID,
			"publisher_id":      c.PublisherID,
			"amount":            c.Amount,
			"commission_amount": c.CommissionAmount,
			"status":            string(c.Status),
			"created_at":        c.CreatedAt.UTC(),
		})
	}
	return insertBatched(ctx, ms, "conversions", rows)
}

func (ms *SQLStore) InsertOffers(ctx context.Context, offers []entity.Offer) error {
	rows := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, map[string]any{"id": o.ID, "name": o.Name})
	}
	return insertBatched(ctx, ms, "offers", rows)
}

func (ms *SQLStore) InsertPublishers(ctx context.Context, publishers []entity.Publisher) error {
	rows := make([]map[string]any, 0, len(publishers))
	for _, p := range publishers {
		rows = append(rows, map[string]any{"id": p.ID, "name": p.Name})
	}
	return insertBatched(ctx, ms, "publishers", rows)
}

// PutAgreement replaces the agreement of one (offer, publisher) pair.
func (ms *SQLStore) PutAgreement(ctx context.Context, a entity.CommissionAgreement) error {
	params := map[string]any{
		"offerId":     a.OfferID,
		"publisherId": a.PublisherID,
		"percent":     a.CommissionPercent,
		"cut":         a.CommissionCut,
	}
	return ms.tx(ctx, func(tx dependency.DB) error {
		err := ExecNamed(ctx, tx, `
			DELETE FROM commission_agreements
			WHERE offer_id = :offerId AND publisher_id = :publisherId`, params)
		if err != nil {
			return fmt.Errorf("delete agreement: %w", err)
		}
		err = ExecNamed(ctx, tx, `
			INSERT INTO commission_agreements (offer_id, publisher_id, commission_percent, commission_cut)
			VALUES (:offerId, :publisherId, :percent, :cut)`, params)
		if err != nil {
			return fmt.Errorf("insert agreement: %w", err)
		}
		return nil
	})
}
