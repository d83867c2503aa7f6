package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alafaq/internal/models"
	"alafaq/internal/validation"
)

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Append(ctx context.Context, record models.BookingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockJournal) List(ctx context.Context) ([]models.BookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}

type presenterSpy struct {
	failures  []error
	successes []models.BookingRecord
}

func (p *presenterSpy) ShowFailure(err error) {
	p.failures = append(p.failures, err)
}

func (p *presenterSpy) ShowSuccess(record models.BookingRecord) {
	p.successes = append(p.successes, record)
}

var fixedNow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestService(journal *mockJournal, spy *presenterSpy) *BookingService {
	logger := zerolog.Nop()
	return NewBookingService(journal, nil, spy, fixedClock, 3, &logger)
}

func validAnalysisForm() models.BookingForm {
	return models.BookingForm{
		PatientName:  "أحمد محمد",
		PatientPhone: "01012345678",
		PatientAge:   "30",
		BookingDate:  "2025-09-10",
		BookingTime:  "09:30",
		AnalysisType: "blood",
	}
}

func TestSubmitSuccess(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	journal.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	record, err := svc.Submit(context.Background(), validAnalysisForm(), models.KindAnalysis)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "أحمد محمد", record.Name)
	assert.Equal(t, "blood", record.Service)
	assert.Equal(t, models.StatusConfirmed, record.Status)
	assert.Equal(t, fixedNow, record.CreatedAt)

	require.Len(t, spy.successes, 1)
	assert.Empty(t, spy.failures)
	journal.AssertExpectations(t)
}

func TestSubmitInvalidPhonePersistsNothing(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	form := validAnalysisForm()
	form.PatientPhone = "12345"

	record, err := svc.Submit(context.Background(), form, models.KindAnalysis)
	assert.ErrorIs(t, err, validation.ErrInvalidPhone)
	assert.Nil(t, record)

	require.Len(t, spy.failures, 1)
	assert.Empty(t, spy.successes)
	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitMissingDoctorService(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	form := validAnalysisForm()
	form.DoctorSelect = ""

	record, err := svc.Submit(context.Background(), form, models.KindDoctor)
	assert.ErrorIs(t, err, validation.ErrMissingService)
	assert.Nil(t, record)
	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitDateBeyondWindow(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	form := validAnalysisForm()
	form.BookingDate = "2026-01-15"

	record, err := svc.Submit(context.Background(), form, models.KindAnalysis)
	assert.ErrorIs(t, err, validation.ErrDateTooFar)
	assert.Nil(t, record)

	require.Len(t, spy.failures, 1)
	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitDateAtWindowEdge(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	journal.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	form := validAnalysisForm()
	form.BookingDate = "2025-12-01"

	_, err := svc.Submit(context.Background(), form, models.KindAnalysis)
	assert.NoError(t, err)
	journal.AssertExpectations(t)
}

func TestSubmitStorageFailureSurfaced(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	storageErr := errors.New("disk full")
	journal.On("Append", mock.Anything, mock.Anything).Return(storageErr).Once()

	record, err := svc.Submit(context.Background(), validAnalysisForm(), models.KindAnalysis)
	assert.ErrorIs(t, err, storageErr)
	assert.Nil(t, record)

	require.Len(t, spy.failures, 1)
	assert.ErrorIs(t, spy.failures[0], storageErr)
	assert.Empty(t, spy.successes)
}

func TestSubmitDoctorBookingMapsSymptoms(t *testing.T) {
	journal := new(mockJournal)
	spy := new(presenterSpy)
	svc := newTestService(journal, spy)

	var appended models.BookingRecord
	journal.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(models.BookingRecord)
		}).
		Return(nil).Once()

	form := models.BookingForm{
		PatientName:  "سارة علي",
		PatientPhone: "01112345678",
		BookingDate:  "2025-09-12",
		BookingTime:  "17:00",
		DoctorSelect: "د. أحمد محمود",
		Symptoms:     "صداع مستمر",
	}

	_, err := svc.Submit(context.Background(), form, models.KindDoctor)
	require.NoError(t, err)

	assert.Equal(t, "د. أحمد محمود", appended.Service)
	assert.Equal(t, "صداع مستمر", appended.Notes)
	assert.Equal(t, models.KindDoctor, appended.Kind)
}
