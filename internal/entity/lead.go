package entity

import (
	"context"
	"time"
)

// LeadRecord is a CRM-owned record: an opaque field mapping whose lifecycle
// we never own. We only read them (search) or append them (create).
type LeadRecord map[string]any

func (r LeadRecord) ID() string {
	id, _ := r["id"].(string)
	return id
}

func (r LeadRecord) Status() string {
	status, _ := r["Lead_Status"].(string)
	return status
}

// Disqualifying reports whether the record's status marks a prior booking
// that makes a new submission a duplicate.
func (r LeadRecord) Disqualifying() bool {
	switch r.Status() {
	case "Not Interested", "Invalid":
		return true
	}
	return false
}

// Intake outcomes
const (
	OutcomeCreated   = "CREATED"
	OutcomeDuplicate = "DUPLICATE"
	OutcomeFailed    = "FAILED"
)

// IntakeEntry is our local audit row for a form submission. The CRM stays
// the source of truth; this log exists so the dealer can reconcile
// submissions against it.
type IntakeEntry struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	FullAddress string     `json:"full_address,omitempty"`
	Dealer      string     `json:"dealer,omitempty"`
	MeetingTime *time.Time `json:"meeting_time,omitempty"`
	Outcome     string     `json:"outcome"`
	CRMRecordID string     `json:"crm_record_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type IntakeRepositoryInterface interface {
	Upsert(ctx context.Context, entry *IntakeEntry) error
	ListRecent(ctx context.Context, limit int) ([]IntakeEntry, error)
}
