package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.eventRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func testEvent(id string, slots int) *domain.Event {
	now := time.Now().UTC()
	return &domain.Event{
		ID:             id,
		OrganizerID:    "org-1",
		Name:           "Tech Conference",
		Duration:       4,
		AvailableSlots: slots,
		StartDate:      now.Add(-time.Hour),
		EndDate:        now.Add(48 * time.Hour),
		LocationID:     "loc-1",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	event := testEvent("e1", 10)
	user := &domain.User{ID: "u1", Name: "Alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, event, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, 3, booking.SlotsReserved)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ZeroSlots(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_EventNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "missing",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Create_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent("e1", 10), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "missing",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Create_DateOutsideEventWindow(t *testing.T) {
	svc, m := newBookingService(t)

	event := testEvent("e1", 10)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   event.EndDate.Add(24 * time.Hour),
		SlotsReserved: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_InsufficientSlots(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent("e1", 2), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
}

func TestBookingService_Create_RepoRejectsAtWriteTime(t *testing.T) {
	svc, m := newBookingService(t)

	// The snapshot says 5 slots but the repository loses the race.
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent("e1", 5), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInsufficientSlots)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
}

func TestBookingService_Update_SameEventGrowsWithinAvailable(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}
	event := testEvent("e1", 3)
	user := &domain.User{ID: "u1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything, "e1", 2).Return(nil)
	m.notifier.EXPECT().NotifyBookingUpdated(mock.Anything, user, event, mock.Anything).Return()

	booking, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, booking.SlotsReserved)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Update_SameEventDeltaTooLarge(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent("e1", 3), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 6,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
}

func TestBookingService_Update_MovesToAnotherEvent(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}
	target := testEvent("e2", 4)
	user := &domain.User{ID: "u1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(target, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything, "e1", 2).Return(nil)
	m.notifier.EXPECT().NotifyBookingUpdated(mock.Anything, user, target, mock.Anything).Return()

	booking, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{
		UserID:        "u1",
		EventID:       "e2",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, "e2", booking.EventID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Update_MoveTargetTooSmall(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(testEvent("e2", 1), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{
		UserID:        "u1",
		EventID:       "e2",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
}

func TestBookingService_Update_BookingNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateBookingInput{
		UserID:        "u1",
		EventID:       "e1",
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}
	user := &domain.User{ID: "u1"}
	event := testEvent("e1", 5)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, event, booking).Return()

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete_NotifyLookupFailureIsNotFatal(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 2}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []*domain.Booking{{ID: "b1", UserID: "u1", EventID: "e1", SlotsReserved: 1}}
	m.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// Many concurrent requests against a nearly empty event must admit
// exactly as many bookings as there are slots.
func TestBookingService_ConcurrentCreate_DepletesExactly(t *testing.T) {
	svc, m := newBookingService(t)

	const slots = 5
	const attempts = 20

	event := testEvent("e1", slots)
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	// The mock stands in for the guarded UPDATE: a single remaining
	// counter decides winners atomically.
	var mu sync.Mutex
	remaining := slots
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) error {
			mu.Lock()
			defer mu.Unlock()
			if remaining < b.SlotsReserved {
				return domain.ErrInsufficientSlots
			}
			remaining -= b.SlotsReserved
			return nil
		})

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				UserID:        "u1",
				EventID:       "e1",
				BookingDate:   time.Now().UTC(),
				SlotsReserved: 1,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrInsufficientSlots):
			rejected++
		}
	}

	assert.Equal(t, slots, succeeded)
	assert.Equal(t, attempts-slots, rejected)
	assert.Equal(t, 0, remaining)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}
