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

// Contact handles POST /api/contact
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if err := h.bookingService.SendContactMessage(r.Context(), &req); err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, verr.Error())
			return
		}
		logger.ErrorContext(r.Context(), "Error sending contact email", "error", err)
		response.InternalError(w, "Failed to send email")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email sent successfully",
	})
}
