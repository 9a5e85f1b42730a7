package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockLocationRepo) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	locationRepo := mocks.NewMockLocationRepo(t)
	return NewEventService(eventRepo, locationRepo), eventRepo, locationRepo
}

func validCreateInput() domain.CreateEventInput {
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	return domain.CreateEventInput{
		OrganizerID:    "org-1",
		Name:           "Tech Conference",
		Description:    "Annual meetup",
		Duration:       4,
		AvailableSlots: 50,
		StartDate:      start,
		EndDate:        start.Add(8 * time.Hour),
		LocationID:     "loc-1",
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, eventRepo, locationRepo := newEventService(t)

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").
		Return(&domain.Location{ID: "loc-1", Capacity: 100}, nil)
	eventRepo.EXPECT().ListByLocation(mock.Anything, "loc-1").Return(nil, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Tech Conference", event.Name)
	assert.Equal(t, 50, event.AvailableSlots)
}

func TestEventService_Create_MissingName(t *testing.T) {
	svc, _, _ := newEventService(t)

	input := validCreateInput()
	input.Name = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_DurationOutOfBounds(t *testing.T) {
	svc, _, _ := newEventService(t)

	for _, duration := range []int{0, 13, -1} {
		input := validCreateInput()
		input.Duration = duration

		_, err := svc.Create(context.Background(), input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	svc, _, _ := newEventService(t)

	input := validCreateInput()
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_LocationNotFound(t *testing.T) {
	svc, _, locationRepo := newEventService(t)

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").Return(nil, domain.ErrLocationNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestEventService_Create_SlotsExceedCapacity(t *testing.T) {
	svc, _, locationRepo := newEventService(t)

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").
		Return(&domain.Location{ID: "loc-1", Capacity: 30}, nil)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_LocationDoubleBooked(t *testing.T) {
	svc, eventRepo, locationRepo := newEventService(t)

	input := validCreateInput()

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").
		Return(&domain.Location{ID: "loc-1", Capacity: 100}, nil)
	eventRepo.EXPECT().ListByLocation(mock.Anything, "loc-1").Return([]*domain.Event{
		{
			ID:        "other",
			StartDate: input.StartDate.Add(time.Hour),
			EndDate:   input.EndDate.Add(time.Hour),
		},
	}, nil)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_TouchingWindowsAllowed(t *testing.T) {
	svc, eventRepo, locationRepo := newEventService(t)

	input := validCreateInput()

	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").
		Return(&domain.Location{ID: "loc-1", Capacity: 100}, nil)
	eventRepo.EXPECT().ListByLocation(mock.Anything, "loc-1").Return([]*domain.Event{
		{
			ID:        "other",
			StartDate: input.EndDate,
			EndDate:   input.EndDate.Add(4 * time.Hour),
		},
	}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
}

func TestEventService_Update_Success(t *testing.T) {
	svc, eventRepo, locationRepo := newEventService(t)

	current := &domain.Event{
		ID:          "e1",
		OrganizerID: "org-1",
		Name:        "Old Name",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(current, nil)
	locationRepo.EXPECT().GetByID(mock.Anything, "loc-1").
		Return(&domain.Location{ID: "loc-1", Capacity: 100}, nil)
	// The event's own window must not collide with itself.
	eventRepo.EXPECT().ListByLocation(mock.Anything, "loc-1").Return([]*domain.Event{current}, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	updated, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{
		Name:           "New Name",
		Description:    input.Description,
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "org-1", updated.OrganizerID)
	assert.Equal(t, current.CreatedAt, updated.CreatedAt)
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	input := validCreateInput()
	_, err := svc.Update(context.Background(), "missing", domain.UpdateEventInput{
		Name:           input.Name,
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
}

func TestEventService_Delete_HasBookings(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrEventHasBookings)

	err := svc.Delete(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventHasBookings)
}

func TestEventService_List(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
