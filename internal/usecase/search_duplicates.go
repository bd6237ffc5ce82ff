package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/integration/zoho"
)

// SearchDuplicatesUseCase queries the CRM for prior bookings near the
// requested date and decides whether any of them makes the submission a
// duplicate. The CRM client returns raw records; the status reading lives
// here. Rejections land in the intake log so the dealer can see bookings
// that never reached the CRM.
type SearchDuplicatesUseCase struct {
	CRM      CRMGateway
	Intake   entity.IntakeRepositoryInterface
	Location *time.Location
}

func NewSearchDuplicatesUseCase(crm CRMGateway, intake entity.IntakeRepositoryInterface, loc *time.Location) *SearchDuplicatesUseCase {
	return &SearchDuplicatesUseCase{
		CRM:      crm,
		Intake:   intake,
		Location: loc,
	}
}

func (uc *SearchDuplicatesUseCase) Execute(ctx context.Context, input SearchDuplicatesInput) (*SearchDuplicatesOutput, error) {
	date, err := time.ParseInLocation("2006-01-02", input.Date, uc.Location)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_DATE", Message: "date must be YYYY-MM-DD"}
	}

	criteria := zoho.DuplicateCriteria(input.Address, input.Phone, input.Email, date, uc.Location)

	records, err := uc.CRM.SearchLeads(ctx, criteria)
	if err != nil {
		return nil, err
	}

	duplicate := false
	for _, r := range records {
		if r.Disqualifying() {
			duplicate = true
			break
		}
	}

	if duplicate {
		uc.logDuplicate(ctx, input, date)
	}

	return &SearchDuplicatesOutput{
		Data:      records,
		Duplicate: duplicate,
	}, nil
}

// logDuplicate is best-effort, same as the create path's intake logging; a
// broken audit log must not block the duplicate answer.
func (uc *SearchDuplicatesUseCase) logDuplicate(ctx context.Context, input SearchDuplicatesInput, date time.Time) {
	if uc.Intake == nil {
		return
	}

	entry := &entity.IntakeEntry{
		ID:          uuid.NewString(),
		Email:       input.Email,
		Phone:       input.Phone,
		FullAddress: input.Address,
		MeetingTime: &date,
		Outcome:     entity.OutcomeDuplicate,
	}

	if err := uc.Intake.Upsert(ctx, entry); err != nil {
		log.Printf("[leads] duplicate intake log upsert failed: %s", err)
	}
}
