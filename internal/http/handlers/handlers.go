package handlers

import (
	"github.com/syammullapudi-pixel/PitstopPros/internal/booking"
	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
)

type Handlers struct {
	bookingService booking.Service
	table          *schedule.Table
}

func New(bookingService booking.Service, table *schedule.Table) *Handlers {
	return &Handlers{
		bookingService: bookingService,
		table:          table,
	}
}
