package resort

import (
	"fmt"
	"time"
)

// Booking binds a resident to a room for a stay interval. Bookings are
// immutable values: amending one yields a copy, and the ledger replaces the
// old value in place. The booking number stays with the record through every
// amendment.
type Booking struct {
	number        int
	room          *Room
	checkIn       time.Time
	checkOut      time.Time
	resident      *Resident
	earlyCheckOut bool
}

// NewBooking builds a fresh, non-amended booking. The resident may be nil
// here; every path through Resort.CheckIn populates it.
func NewBooking(number int, checkIn, checkOut time.Time, room *Room, resident *Resident) Booking {
	return Booking{
		number:   number,
		room:     room,
		checkIn:  checkIn,
		checkOut: checkOut,
		resident: resident,
	}
}

func (b Booking) Number() int {
	return b.number
}

func (b Booking) Room() *Room {
	return b.room
}

func (b Booking) CheckIn() time.Time {
	return b.checkIn
}

func (b Booking) CheckOut() time.Time {
	return b.checkOut
}

func (b Booking) Resident() *Resident {
	return b.resident
}

func (b Booking) EarlyCheckOut() bool {
	return b.earlyCheckOut
}

// WithCheckOut returns a copy of the booking whose stay ends on newCheckOut,
// flagged as an early check-out.
func (b Booking) WithCheckOut(newCheckOut time.Time) Booking {
	b.checkOut = newCheckOut
	b.earlyCheckOut = true

	return b
}

// truncatedTo ends the stay at newCheckOut without flagging an early
// check-out; used when a room change supersedes the booking.
func (b Booking) truncatedTo(newCheckOut time.Time) Booking {
	b.checkOut = newCheckOut
	b.earlyCheckOut = false

	return b
}

func (b Booking) Describe() string {
	residentName := ""
	if b.resident != nil {
		residentName = b.resident.FullName()
	}

	return fmt.Sprintf(
		"Number: %d, Room: %s, Check-in date: %s, Check-out date: %s, Resident: %s",
		b.number,
		b.room.Number().Value(),
		b.checkIn.Format(describeDateLayout),
		b.checkOut.Format(describeDateLayout),
		residentName,
	)
}
