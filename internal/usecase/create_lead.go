package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/queue"
)

// CreateLeadUseCase submits a field mapping to the CRM, then records the
// submission in the local intake log and tells the notification queue.
// Log and queue failures never fail the request; the CRM create is the only
// thing the caller is waiting on.
type CreateLeadUseCase struct {
	CRM      CRMGateway
	Intake   entity.IntakeRepositoryInterface
	Queue    QueueProducerInterface
	Location *time.Location
}

func NewCreateLeadUseCase(crm CRMGateway, intake entity.IntakeRepositoryInterface, producer QueueProducerInterface, loc *time.Location) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		CRM:      crm,
		Intake:   intake,
		Queue:    producer,
		Location: loc,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, fields map[string]any) (*CreateLeadOutput, error) {
	envelope, err := uc.CRM.CreateLead(ctx, fields)
	if err != nil {
		uc.logIntake(ctx, fields, entity.OutcomeFailed, "")
		return nil, err
	}

	recordID := createdRecordID(envelope)
	entry := uc.logIntake(ctx, fields, entity.OutcomeCreated, recordID)

	if uc.Queue != nil {
		payload := queue.LeadCreatedPayload{
			RecordID:    recordID,
			FirstName:   stringField(fields, "First_Name"),
			LastName:    stringField(fields, "Last_Name"),
			Email:       stringField(fields, "Email"),
			Phone:       stringField(fields, "Mobile"),
			FullAddress: stringField(fields, "Full_Address"),
			Dealer:      stringField(fields, "Dealer"),
			MeetingTime: stringField(fields, "Meeting_Time"),
		}
		if entry != nil {
			payload.IntakeID = entry.ID
		}
		if err := uc.Queue.PublishLeadCreated(ctx, payload); err != nil {
			log.Printf("[leads] notification publish failed: %s", err)
		}
	}

	out := &CreateLeadOutput{
		Envelope: envelope,
		RecordID: recordID,
	}
	if entry != nil {
		out.IntakeID = entry.ID
	}
	return out, nil
}

// logIntake is best-effort; a broken audit log must not block the booking.
func (uc *CreateLeadUseCase) logIntake(ctx context.Context, fields map[string]any, outcome, recordID string) *entity.IntakeEntry {
	if uc.Intake == nil {
		return nil
	}

	entry := &entity.IntakeEntry{
		ID:          uuid.NewString(),
		FirstName:   stringField(fields, "First_Name"),
		LastName:    stringField(fields, "Last_Name"),
		Email:       stringField(fields, "Email"),
		Phone:       stringField(fields, "Mobile"),
		FullAddress: stringField(fields, "Full_Address"),
		Dealer:      stringField(fields, "Dealer"),
		Outcome:     outcome,
		CRMRecordID: recordID,
	}
	if raw := stringField(fields, "Meeting_Time"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			local := t.In(uc.Location)
			entry.MeetingTime = &local
		}
	}

	if err := uc.Intake.Upsert(ctx, entry); err != nil {
		log.Printf("[leads] intake log upsert failed: %s", err)
		return nil
	}
	return entry
}

// createdRecordID digs the new record's id out of the CRM's batch envelope:
// {"data":[{"code":"SUCCESS","details":{"id":"..."}}]}.
func createdRecordID(envelope map[string]any) string {
	data, _ := envelope["data"].([]any)
	if len(data) == 0 {
		return ""
	}
	rec, _ := data[0].(map[string]any)
	details, _ := rec["details"].(map[string]any)
	id, _ := details["id"].(string)
	return id
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
