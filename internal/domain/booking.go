package domain

// BookingRequest is the payload posted by the booking widget. It lives for
// exactly one request; nothing is persisted beyond the external calendar.
type BookingRequest struct {
	ServiceType     string `json:"serviceType"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	ServiceDate     string `json:"serviceDate"` // YYYY-MM-DD
	ServiceTime     string `json:"serviceTime"` // HH:MM, 24h
	VehicleInfo     string `json:"vehicleInfo"`
	Notes           string `json:"notes,omitempty"`
}

// BookingOutcome is the orchestrator's aggregated result for one request.
//
// A booking whose calendar event exists but whose emails could not be sent
// is still a real booking; CustomerEmailSent/OwnerEmailSent report that
// partial state instead of collapsing it into a total failure.
type BookingOutcome struct {
	Success           bool   `json:"success"`
	Message           string `json:"message,omitempty"`
	EventID           string `json:"eventId,omitempty"`
	EventLink         string `json:"eventLink,omitempty"`
	CustomerEmailSent bool   `json:"customerEmailSent"`
	OwnerEmailSent    bool   `json:"ownerEmailSent"`
	Error             string `json:"error,omitempty"`
}

// ContactRequest is the contact form payload. All fields are required.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
