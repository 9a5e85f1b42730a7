package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/handler/dto"
	hmocks "github.com/MB-Montecillo/EMS-Webdev2/internal/handler/mocks"
)

type svcMocks struct {
	event    *hmocks.MockEventSvc
	booking  *hmocks.MockBookingSvc
	location *hmocks.MockLocationSvc
	user     *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		event:    hmocks.NewMockEventSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		location: hmocks.NewMockLocationSvc(t),
		user:     hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.event, m.booking, m.location, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)

		api.POST("/locations", h.CreateLocation)
		api.GET("/locations", h.ListLocations)
		api.DELETE("/locations/:id", h.DeleteLocation)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.DELETE("/users/:id", h.DeleteUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{
		ID:             uuid.New().String(),
		OrganizerID:    uuid.New().String(),
		Name:           "Tech Conference",
		Duration:       4,
		AvailableSlots: 50,
		StartDate:      start,
		EndDate:        start.Add(8 * time.Hour),
		LocationID:     uuid.New().String(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OrganizerID:    event.OrganizerID,
		EventName:      "Tech Conference",
		Duration:       4,
		AvailableSlots: 50,
		StartDate:      start.Format(time.RFC3339),
		EndDate:        start.Add(8 * time.Hour).Format(time.RFC3339),
		LocationID:     event.LocationID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Conference", resp.EventName)
	assert.Equal(t, 50, resp.AvailableSlots)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{"event_name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OrganizerID:    uuid.New().String(),
		EventName:      "X",
		Duration:       4,
		AvailableSlots: 10,
		StartDate:      "not-a-date",
		EndDate:        "2026-09-10",
		LocationID:     uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Name: "Event 1"},
		{ID: "e2", Name: "Event 2"},
	}
	m.event.EXPECT().List(mock.Anything).Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateEvent_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().Update(mock.Anything, eventID, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPut, "/api/events/"+eventID, dto.UpdateEventRequest{
		EventName:      "X",
		Duration:       20,
		AvailableSlots: 10,
		StartDate:      "2026-09-10T09:00:00Z",
		EndDate:        "2026-09-10T17:00:00Z",
		LocationID:     uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_HasBookings(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().Delete(mock.Anything, eventID).Return(domain.ErrEventHasBookings)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        uuid.New().String(),
		EventID:       uuid.New().String(),
		BookingDate:   time.Now().UTC(),
		SlotsReserved: 2,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		UserID:        booking.UserID,
		EventID:       booking.EventID,
		BookingDate:   booking.BookingDate.Format(time.RFC3339),
		SlotsReserved: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.SlotsReserved)
}

func TestHandler_CreateBooking_DateOnlyAccepted(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{ID: uuid.New().String(), SlotsReserved: 1}
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		UserID:        uuid.New().String(),
		EventID:       uuid.New().String(),
		BookingDate:   "2026-09-10",
		SlotsReserved: 1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateBooking_InsufficientSlots(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrInsufficientSlots)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		UserID:        uuid.New().String(),
		EventID:       uuid.New().String(),
		BookingDate:   time.Now().Format(time.RFC3339),
		SlotsReserved: 5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Contention(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrContention)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		UserID:        uuid.New().String(),
		EventID:       uuid.New().String(),
		BookingDate:   time.Now().Format(time.RFC3339),
		SlotsReserved: 1,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Update(mock.Anything, bookingID, mock.Anything).
		Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID, dto.UpdateBookingRequest{
		UserID:        uuid.New().String(),
		EventID:       uuid.New().String(),
		BookingDate:   time.Now().Format(time.RFC3339),
		SlotsReserved: 1,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Delete(mock.Anything, bookingID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: userID, SlotsReserved: 1},
	}
	m.booking.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/bad-id/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Locations ---

func TestHandler_CreateLocation_Success(t *testing.T) {
	m, r := setupRouter(t)

	location := &domain.Location{
		ID:       uuid.New().String(),
		Name:     "Main Hall",
		Address:  "1 Center St",
		Capacity: 200,
	}
	m.location.EXPECT().Create(mock.Anything, mock.Anything).Return(location, nil)

	w := doJSON(t, r, http.MethodPost, "/api/locations", dto.CreateLocationRequest{
		LocationName: "Main Hall",
		Address:      "1 Center St",
		Capacity:     200,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Main Hall", resp.LocationName)
}

func TestHandler_DeleteLocation_HasEvents(t *testing.T) {
	m, r := setupRouter(t)

	locationID := uuid.New().String()
	m.location.EXPECT().Delete(mock.Anything, locationID).Return(domain.ErrLocationHasEvents)

	w := doJSON(t, r, http.MethodDelete, "/api/locations/"+locationID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleAttendee,
		CreatedAt: time.Now(),
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "attendee",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "attendee", resp.Role)
}

func TestHandler_CreateUser_InvalidRole(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "taken@example.com",
		Role:  "attendee",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteUser_HasBookings(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.user.EXPECT().Delete(mock.Anything, userID).Return(domain.ErrUserHasBookings)

	w := doJSON(t, r, http.MethodDelete, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetByID(mock.Anything, eventID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
