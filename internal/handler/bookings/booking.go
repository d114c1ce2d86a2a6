package bookings

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"slotbook/internal/api"
	"slotbook/internal/database"
	"slotbook/internal/middleware"
	"slotbook/internal/model"
	"slotbook/internal/service"
	"slotbook/internal/store"
	"slotbook/internal/worker"
)

var (
	createBooking          = store.CreateBooking
	getBookingByID         = store.GetBookingByID
	listBookings           = store.ListBookings
	listBookingsByUser     = store.ListBookingsByUser
	listBookingsWithOwners = store.ListBookingsWithOwners
	updateBooking          = store.UpdateBooking
	deleteBooking          = store.DeleteBooking
	getUserByID            = store.GetUserByID
	insertAuditEntry       = store.InsertAuditEntry
)

func pagination(c echo.Context) (int, int) {
	skip, limit := 0, 100
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}

// CreateBookingHandler creates a booking owned by the caller. Ownership is
// taken from the authenticated user, never from the request body, so it
// cannot be spoofed onto someone else.
// @Summary     Create a booking
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       booking body api.CreateBookingRequest true "New booking"
// @Success     201 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings [post]
func CreateBookingHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}

		var req api.CreateBookingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		status := model.BookingStatusPending
		if req.Status != "" {
			status = model.BookingStatus(req.Status)
		}

		booking, err := createBooking(c.Request().Context(), db, &model.Booking{
			UserID:      cu.ID,
			BookingDate: req.BookingDate,
			Status:      status,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		auditAsync(c, db, wp, cu.ID, "booking.create", booking.ID)

		return c.JSON(http.StatusCreated, api.NewBookingResponse(booking))
	}
}

// ListBookingsHandler pages bookings with role-based visibility: admins see
// every booking, everyone else only their own. The filter is part of the
// query, not applied after the fact.
// @Summary     List bookings
// @Tags        bookings
// @Produce     json
// @Param       skip  query int false "Rows to skip" default(0)
// @Param       limit query int false "Page size"    default(100)
// @Success     200 {array}  api.BookingResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings [get]
func ListBookingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}
		skip, limit := pagination(c)

		var (
			bookings []*model.Booking
			err      error
		)
		if cu.IsAdmin() {
			bookings, err = listBookings(c.Request().Context(), db, skip, limit)
		} else {
			bookings, err = listBookingsByUser(c.Request().Context(), db, cu.ID, skip, limit)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.BookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, api.NewBookingResponse(b))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ListBookingsWithOwnersHandler is the admin-only view joining each booking
// with its owner's public profile.
// @Summary     List all bookings with owner details (admin only)
// @Tags        bookings
// @Produce     json
// @Param       skip  query int false "Rows to skip" default(0)
// @Param       limit query int false "Page size"    default(100)
// @Success     200 {array}  api.BookingWithOwnerResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/all [get]
func ListBookingsWithOwnersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}
		if !cu.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only admin users can view all bookings with user details"})
		}
		skip, limit := pagination(c)

		rows, err := listBookingsWithOwners(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.BookingWithOwnerResponse, 0, len(rows))
		for _, bw := range rows {
			resp = append(resp, api.NewBookingWithOwnerResponse(bw))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetBookingHandler returns one booking, if the caller is allowed to see it.
// @Summary     Get a booking by ID
// @Tags        bookings
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/{id} [get]
func GetBookingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}
		booking, status, err := fetchAuthorized(c, db, cu)
		if err != nil {
			return c.JSON(status, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewBookingResponse(booking))
	}
}

// UpdateBookingHandler applies a partial update to a booking the caller may
// modify, stamping updated_at.
// @Summary     Update a booking by ID
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Booking ID"
// @Param       booking body api.UpdateBookingRequest true "Fields to change"
// @Success     200 {object} api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/{id} [put]
func UpdateBookingHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}

		var req api.UpdateBookingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		booking, status, err := fetchAuthorized(c, db, cu)
		if err != nil {
			return c.JSON(status, api.ErrorResponse{Message: err.Error()})
		}

		if req.BookingDate != nil {
			booking.BookingDate = *req.BookingDate
		}
		if req.Status != nil {
			booking.Status = model.BookingStatus(*req.Status)
		}
		now := time.Now().UTC()
		booking.UpdatedAt = &now

		if err := updateBooking(c.Request().Context(), db, booking); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "booking not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		auditAsync(c, db, wp, cu.ID, "booking.update", booking.ID)

		return c.JSON(http.StatusOK, api.NewBookingResponse(booking))
	}
}

// DeleteBookingHandler removes a booking the caller may modify.
// @Summary     Delete a booking by ID
// @Tags        bookings
// @Param       id path int true "Booking ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/{id} [delete]
func DeleteBookingHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}

		booking, status, err := fetchAuthorized(c, db, cu)
		if err != nil {
			return c.JSON(status, api.ErrorResponse{Message: err.Error()})
		}

		if err := deleteBooking(c.Request().Context(), db, booking.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "booking not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		auditAsync(c, db, wp, cu.ID, "booking.delete", booking.ID)

		return c.NoContent(http.StatusNoContent)
	}
}

// ListUserBookingsHandler pages one user's bookings for an admin.
// @Summary     List bookings of a given user (admin only)
// @Tags        bookings
// @Produce     json
// @Param       user_id path  int true  "User ID"
// @Param       skip    query int false "Rows to skip" default(0)
// @Param       limit   query int false "Page size"    default(100)
// @Success     200 {array}  api.BookingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /bookings/user/{user_id} [get]
func ListUserBookingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cu := middleware.CurrentUser(c)
		if cu == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing authenticated user"})
		}
		if !cu.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only admin users can view other users' bookings"})
		}

		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		if _, err := getUserByID(c.Request().Context(), db, userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		skip, limit := pagination(c)
		bookings, err := listBookingsByUser(c.Request().Context(), db, userID, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.BookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, api.NewBookingResponse(b))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// fetchAuthorized loads the booking in the :id param and applies the
// admin-or-owner rule. The second return value is the HTTP status to use
// when err is non-nil.
func fetchAuthorized(c echo.Context, db database.DB, cu *model.User) (*model.Booking, int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid booking ID")
	}
	booking, err := getBookingByID(c.Request().Context(), db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, http.StatusNotFound, errors.New("booking not found")
		}
		return nil, http.StatusInternalServerError, err
	}
	if !service.CanAccess(cu.Role, booking.UserID, cu.ID) {
		return nil, http.StatusForbidden, errors.New("you can only access your own bookings")
	}
	return booking, 0, nil
}

func auditAsync(c echo.Context, db database.DB, wp worker.Pool, actorID int, action string, bookingID int) {
	if wp == nil {
		return
	}
	logger := c.Logger()
	wp.Submit(func() {
		entry := &model.AuditEntry{
			ActorID:    actorID,
			Action:     action,
			EntityType: "booking",
			EntityID:   bookingID,
		}
		if err := insertAuditEntry(context.Background(), db, entry); err != nil {
			logger.Errorf("audit: %v", err)
		}
	})
}
