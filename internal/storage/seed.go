package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedExamples inserts a few example submissions into an empty database
// so the recent-submissions pane has something to show on first run.
// It is idempotent and safe to run on every startup; the inserts run in
// one transaction so a half-seeded database cannot exist.
func SeedExamples(ctx context.Context, db *sql.DB) error {
	repo := NewSubmissionRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	examples := []struct {
		formID string
		fields map[string]string
	}{
		{"profile", map[string]string{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
			"city":  "London",
		}},
		{"feedback", map[string]string{
			"subject": "First impressions",
			"body":    "Typed text survives switching forms.",
			"rating":  "5",
		}},
	}

	base := Now().Add(-24 * time.Hour)
	return WithTx(db, func(tx *sql.Tx) error {
		for i, ex := range examples {
			payload, err := EncodePayload(ex.fields)
			if err != nil {
				return err
			}
			// Deterministic IDs so a reseeded database gets the same rows.
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed:"+ex.formID)).String()
			_, err = tx.ExecContext(ctx, `
			INSERT INTO submissions(id, form_id, payload, submitted_at) VALUES (?, ?, ?, ?);
			`, id, ex.formID, payload, base.Add(time.Duration(i)*time.Minute))
			if err != nil {
				return fmt.Errorf("seed %s: %w", ex.formID, err)
			}
		}
		return nil
	})
}
