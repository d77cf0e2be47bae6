package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is one submitted form, frozen at submit time. The payload is
// the form's fields encoded as a JSON object.
type Submission struct {
	ID          string
	FormID      string
	Payload     string
	SubmittedAt time.Time
}

// Fields decodes the JSON payload back into field name/value pairs.
func (s Submission) Fields() (map[string]string, error) {
	out := make(map[string]string)
	if err := json.Unmarshal([]byte(s.Payload), &out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

// EncodePayload renders form fields as a submission payload.
func EncodePayload(fields map[string]string) (string, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return string(b), nil
}

// SubmissionRepo handles submissions.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Insert stores s, filling in ID and SubmittedAt when empty.
func (r *SubmissionRepo) Insert(ctx context.Context, s Submission) (Submission, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO submissions(id, form_id, payload, submitted_at) VALUES (?, ?, ?, ?);
	`, s.ID, s.FormID, s.Payload, s.SubmittedAt)
	if err != nil {
		return Submission{}, err
	}
	return s, nil
}

// List returns the most recent submissions, newest first. limit <= 0 means
// no limit.
func (r *SubmissionRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	q := `SELECT id, form_id, payload, submitted_at FROM submissions ORDER BY submitted_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.FormID, &s.Payload, &s.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ByForm returns every submission for one form, newest first.
func (r *SubmissionRepo) ByForm(ctx context.Context, formID string) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, form_id, payload, submitted_at FROM submissions WHERE form_id = ? ORDER BY submitted_at DESC, id DESC;
	`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.FormID, &s.Payload, &s.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the total number of submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge deletes every submission and reports how many went.
func (r *SubmissionRepo) Purge(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
