package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/handler/dto"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type LocationSvc interface {
	Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error)
	Update(ctx context.Context, id string, input domain.UpdateLocationInput) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService    EventSvc
	bookingService  BookingSvc
	locationService LocationSvc
	userService     UserSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, locationService LocationSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		bookingService:  bookingService,
		locationService: locationService,
		userService:     userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, endDate, ok := h.parseDateRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	input := domain.CreateEventInput{
		OrganizerID:    req.OrganizerID,
		Name:           req.EventName,
		Description:    req.Description,
		Duration:       req.Duration,
		AvailableSlots: req.AvailableSlots,
		StartDate:      startDate,
		EndDate:        endDate,
		LocationID:     req.LocationID,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, endDate, ok := h.parseDateRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	input := domain.UpdateEventInput{
		Name:           req.EventName,
		Description:    req.Description,
		Duration:       req.Duration,
		AvailableSlots: req.AvailableSlots,
		StartDate:      startDate,
		EndDate:        endDate,
		LocationID:     req.LocationID,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "event deleted successfully"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateBookingInput{
		UserID:        req.UserID,
		EventID:       req.EventID,
		BookingDate:   bookingDate,
		SlotsReserved: req.SlotsReserved,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	input := domain.UpdateBookingInput{
		UserID:        req.UserID,
		EventID:       req.EventID,
		BookingDate:   bookingDate,
		SlotsReserved: req.SlotsReserved,
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid booking id")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "booking deleted successfully"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid user id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Locations

func (h *Handler) CreateLocation(c *ginext.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateLocationInput{
		Name:     req.LocationName,
		Address:  req.Address,
		Capacity: req.Capacity,
	}

	location, err := h.locationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

func (h *Handler) GetLocation(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid location id")
	if !ok {
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

func (h *Handler) ListLocations(c *ginext.Context) {
	locations, err := h.locationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, dto.ToLocationResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateLocation(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid location id")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateLocationInput{
		Name:     req.LocationName,
		Address:  req.Address,
		Capacity: req.Capacity,
	}

	location, err := h.locationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

func (h *Handler) DeleteLocation(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid location id")
	if !ok {
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "location deleted successfully"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid user id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid user id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Role:           domain.Role(req.Role),
		ProfilePicture: req.ProfilePicture,
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id, ok := h.pathID(c, "invalid user id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "user deleted successfully"})
}

// helpers

func (h *Handler) pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) parseDateRange(c *ginext.Context, start, end string) (time.Time, time.Time, bool) {
	startDate, err := parseDate(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}

	endDate, err := parseDate(end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInsufficientSlots),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventHasBookings),
		errors.Is(err, domain.ErrLocationHasEvents),
		errors.Is(err, domain.ErrUserHasBookings),
		errors.Is(err, domain.ErrContention):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
