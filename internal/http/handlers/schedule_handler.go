package handlers

import (
	"net/http"

	"github.com/syammullapudi-pixel/PitstopPros/internal/http/response"
)

// Schedule handles GET /api/schedule. The widget renders its slot list
// from this, so client and server always agree on bookable hours.
func (h *Handlers) Schedule(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.table.Days())
}
