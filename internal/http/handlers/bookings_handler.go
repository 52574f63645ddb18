package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/syammullapudi-pixel/PitstopPros/internal/booking"
	"github.com/syammullapudi-pixel/PitstopPros/internal/domain"
	"github.com/syammullapudi-pixel/PitstopPros/internal/http/response"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/logger"
)

// CreateBooking handles POST /api/bookings/create
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	outcome, err := h.bookingService.CreateBooking(r.Context(), &req)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.Is(err, booking.ErrCalendarNotReady):
			response.Unauthorized(w, "Google Calendar not authenticated")
		case errors.As(err, &verr):
			code := response.CodeInvalidInput
			if verr.OutOfSchedule {
				code = response.CodeOutOfSchedule
			}
			response.WriteError(w, http.StatusBadRequest, verr.Error(), code)
		default:
			logger.ErrorContext(r.Context(), "Error creating booking", "error", err)
			response.InternalError(w, err.Error())
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, outcome)
}
