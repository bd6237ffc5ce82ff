package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/integration/zoho"
)

// MockIntakeRepository
type MockIntakeRepository struct {
	mock.Mock
}

func (m *MockIntakeRepository) Upsert(ctx context.Context, entry *entity.IntakeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockIntakeRepository) ListRecent(ctx context.Context, limit int) ([]entity.IntakeEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.IntakeEntry), args.Error(1)
}

func successEnvelope(id string) map[string]any {
	return map[string]any{
		"data": []any{
			map[string]any{
				"code":    "SUCCESS",
				"details": map[string]any{"id": id},
			},
		},
	}
}

func leadFields() map[string]any {
	return map[string]any{
		"First_Name":   "Jane",
		"Last_Name":    "Doe",
		"Email":        "jane@example.com",
		"Mobile":       "5551234567",
		"Full_Address": "123 Main St, Toronto",
		"Dealer":       "Canadian Choice Home Services",
		"Meeting_Time": "2024-06-10T10:00:00-04:00",
	}
}

func TestCreateLeadSuccess(t *testing.T) {
	crm := new(MockCRMGateway)
	intake := new(MockIntakeRepository)
	producer := new(MockQueueProducer)

	fields := leadFields()
	crm.On("CreateLead", mock.Anything, fields).Return(successEnvelope("4001"), nil)
	intake.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entity.IntakeEntry) bool {
		return e.Outcome == entity.OutcomeCreated && e.CRMRecordID == "4001" && e.Email == "jane@example.com"
	})).Return(nil)
	producer.On("PublishLeadCreated", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(crm, intake, producer, testZone)
	output, err := uc.Execute(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, "4001", output.RecordID)
	assert.NotEmpty(t, output.IntakeID)

	crm.AssertExpectations(t)
	intake.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestCreateLeadUpstreamErrorSkipsPublish(t *testing.T) {
	crm := new(MockCRMGateway)
	intake := new(MockIntakeRepository)
	producer := new(MockQueueProducer)

	fields := leadFields()
	crm.On("CreateLead", mock.Anything, fields).Return(nil, &zoho.UpstreamError{Status: 400, Body: "MANDATORY_NOT_FOUND"})
	intake.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entity.IntakeEntry) bool {
		return e.Outcome == entity.OutcomeFailed
	})).Return(nil)

	uc := NewCreateLeadUseCase(crm, intake, producer, testZone)
	_, err := uc.Execute(context.Background(), fields)

	require.Error(t, err)
	var upstream *zoho.UpstreamError
	require.ErrorAs(t, err, &upstream)

	producer.AssertNotCalled(t, "PublishLeadCreated", mock.Anything, mock.Anything)
	intake.AssertExpectations(t)
}

func TestCreateLeadQueueFailureDoesNotFailRequest(t *testing.T) {
	crm := new(MockCRMGateway)
	intake := new(MockIntakeRepository)
	producer := new(MockQueueProducer)

	fields := leadFields()
	crm.On("CreateLead", mock.Anything, fields).Return(successEnvelope("4002"), nil)
	intake.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateLeadUseCase(crm, intake, producer, testZone)
	output, err := uc.Execute(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, "4002", output.RecordID)
}

func TestCreateLeadIntakeFailureDoesNotFailRequest(t *testing.T) {
	crm := new(MockCRMGateway)
	intake := new(MockIntakeRepository)

	fields := leadFields()
	crm.On("CreateLead", mock.Anything, fields).Return(successEnvelope("4003"), nil)
	intake.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

	uc := NewCreateLeadUseCase(crm, intake, nil, testZone)
	output, err := uc.Execute(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, "4003", output.RecordID)
	assert.Empty(t, output.IntakeID)
}

func TestCreateLeadWithoutOptionalDependencies(t *testing.T) {
	crm := new(MockCRMGateway)
	fields := leadFields()
	crm.On("CreateLead", mock.Anything, fields).Return(successEnvelope("4004"), nil)

	uc := NewCreateLeadUseCase(crm, nil, nil, testZone)
	output, err := uc.Execute(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, "4004", output.RecordID)
	assert.Equal(t, successEnvelope("4004"), output.Envelope)
}
