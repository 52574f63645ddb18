package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/syammullapudi-pixel/PitstopPros/internal/domain"
)

const displayDate = "Monday, January 2, 2006"

func customerEmail(req *domain.BookingRequest, start time.Time, link string) (subject, text, html string) {
	subject = "Booking Confirmation - Pitstop Pros"

	notesRow := ""
	notesLine := ""
	if req.Notes != "" {
		notesRow = fmt.Sprintf("<li><strong>Notes:</strong> %s</li>", req.Notes)
		notesLine = fmt.Sprintf("Notes: %s\n", req.Notes)
	}

	text = fmt.Sprintf(
		"Hi %s,\n\nYour service has been scheduled.\n\nService: %s\nDate: %s\nTime: %s\nVehicle: %s\nAddress: %s\n%s\nView in calendar: %s\n\nThank you for choosing Pitstop Pros.",
		req.CustomerName, req.ServiceType, start.Format(displayDate), req.ServiceTime,
		req.VehicleInfo, req.CustomerAddress, notesLine, link)

	html = fmt.Sprintf(`<h2>Booking Confirmed!</h2>
<p>Hi %s,</p>
<p>Your service has been scheduled. Here are your booking details:</p>
<ul>
  <li><strong>Service:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Vehicle:</strong> %s</li>
  <li><strong>Address:</strong> %s</li>
  %s
</ul>
<p>We'll see you at the scheduled time at <strong>%s</strong>.</p>
<p>Thank you for choosing Pitstop Pros.</p>
<p><a href="%s">View in Calendar</a></p>`,
		req.CustomerName, req.ServiceType, start.Format(displayDate), req.ServiceTime,
		req.VehicleInfo, req.CustomerAddress, notesRow, req.CustomerAddress, link)

	return subject, text, html
}

func ownerEmail(req *domain.BookingRequest, start time.Time, link string) (subject, text, html string) {
	subject = "New Booking Created - Pitstop Pros"

	notesRow := ""
	notesLine := ""
	if req.Notes != "" {
		notesRow = fmt.Sprintf("<li><strong>Notes:</strong> %s</li>", req.Notes)
		notesLine = fmt.Sprintf("Notes: %s\n", req.Notes)
	}

	text = fmt.Sprintf(
		"A new booking has been created.\n\nService: %s\nCustomer Name: %s\nCustomer Email: %s\nCustomer Phone: %s\nDate: %s\nTime: %s\nVehicle: %s\nAddress: %s\n%s\nView in calendar: %s",
		req.ServiceType, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		start.Format(displayDate), req.ServiceTime, req.VehicleInfo, req.CustomerAddress,
		notesLine, link)

	html = fmt.Sprintf(`<h2>New Booking Notification</h2>
<p>A new booking has been created. Here are the details:</p>
<ul>
  <li><strong>Service:</strong> %s</li>
  <li><strong>Customer Name:</strong> %s</li>
  <li><strong>Customer Email:</strong> %s</li>
  <li><strong>Customer Phone:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Vehicle:</strong> %s</li>
  <li><strong>Address:</strong> %s</li>
  %s
</ul>
<p><a href="%s">View in Calendar</a></p>`,
		req.ServiceType, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		start.Format(displayDate), req.ServiceTime, req.VehicleInfo, req.CustomerAddress,
		notesRow, link)

	return subject, text, html
}

func contactEmail(req *domain.ContactRequest) (subject, text, html string) {
	subject = fmt.Sprintf("New Contact Form Submission from %s", req.Name)

	text = fmt.Sprintf("Name: %s\nPhone: %s\nEmail: %s\n\n%s",
		req.Name, req.Phone, req.Email, req.Message)

	html = fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		req.Name, req.Phone, req.Email, strings.ReplaceAll(req.Message, "\n", "<br>"))

	return subject, text, html
}
