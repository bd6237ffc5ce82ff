package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/canchoice-leads/internal/entity"
)

type IntakeRepository struct {
	DB *sql.DB
}

func NewIntakeRepository(db *sql.DB) *IntakeRepository {
	return &IntakeRepository{DB: db}
}

// conflictTarget must match the unique index in migrations/001_intake_entries.sql.
// meeting_time is nullable and NULLs never collide in Postgres, so entries
// without a parsed meeting time conflict on an epoch sentinel instead.
const conflictTarget = `(email, COALESCE(meeting_time, 'epoch'::timestamptz))`

// Upsert records a submission. A resubmission for the same email and
// meeting slot overwrites the outcome instead of piling up rows.
func (r *IntakeRepository) Upsert(ctx context.Context, entry *entity.IntakeEntry) error {
	query := `
		INSERT INTO intake_entries
			(id, first_name, last_name, email, phone, full_address, dealer,
			 meeting_time, outcome, crm_record_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT ` + conflictTarget + `
		DO UPDATE SET
			outcome = EXCLUDED.outcome,
			crm_record_id = COALESCE(NULLIF(EXCLUDED.crm_record_id, ''), intake_entries.crm_record_id),
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		entry.ID,
		nullString(entry.FirstName),
		nullString(entry.LastName),
		entry.Email,
		nullString(entry.Phone),
		nullString(entry.FullAddress),
		nullString(entry.Dealer),
		entry.MeetingTime,
		entry.Outcome,
		nullString(entry.CRMRecordID),
	).Scan(
		&entry.ID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

func (r *IntakeRepository) ListRecent(ctx context.Context, limit int) ([]entity.IntakeEntry, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, full_address, dealer,
		       meeting_time, outcome, crm_record_id, created_at, updated_at
		FROM intake_entries
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.IntakeEntry
	for rows.Next() {
		var e entity.IntakeEntry
		var firstName, lastName, phone, fullAddress, dealer, recordID sql.NullString
		var meetingTime sql.NullTime

		err := rows.Scan(
			&e.ID, &firstName, &lastName, &e.Email, &phone, &fullAddress,
			&dealer, &meetingTime, &e.Outcome, &recordID, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		e.FirstName = firstName.String
		e.LastName = lastName.String
		e.Phone = phone.String
		e.FullAddress = fullAddress.String
		e.Dealer = dealer.String
		e.CRMRecordID = recordID.String
		if meetingTime.Valid {
			t := meetingTime.Time
			e.MeetingTime = &t
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
