package resort

import "time"

// NumberSource hands out booking numbers for one Resort. The ledger is
// append/replace-only, so a per-resort monotonic counter always matches the
// "ledger length plus one" numbering rule.
type NumberSource interface {
	Next() int
}

// Resort is the aggregate root for one property: it owns the room roster and
// the booking ledger, and is their only mutator. All operations assume a
// single caller; concurrent use must be serialized externally, one lock per
// Resort instance.
type Resort struct {
	name    string
	rooms   []*Room
	roomIdx map[RoomNumber]int
	ledger  []Booking
	numbers NumberSource
}

// New builds a resort over the given roster. Nil entries in rooms are
// dropped. A nil NumberSource falls back to ledger-length numbering.
func New(name string, rooms []*Room, numbers NumberSource) *Resort {
	r := &Resort{
		name:    name,
		roomIdx: make(map[RoomNumber]int),
		numbers: numbers,
	}

	for _, room := range rooms {
		if room == nil {
			continue
		}

		r.AddRoom(room)
	}

	return r
}

func (r *Resort) Name() string {
	return r.name
}

// Rooms returns the roster in insertion order. The slice is a copy; the rooms
// themselves are immutable.
func (r *Resort) Rooms() []*Room {
	rooms := make([]*Room, len(r.rooms))
	copy(rooms, r.rooms)

	return rooms
}

// Bookings returns a copy of the ledger in insertion order.
func (r *Resort) Bookings() []Booking {
	bookings := make([]Booking, len(r.ledger))
	copy(bookings, r.ledger)

	return bookings
}

func (r *Resort) NumberOfRooms() int {
	return len(r.rooms)
}

func (r *Resort) NumberOfBookings() int {
	return len(r.ledger)
}

// NumberOfResidents counts distinct residents holding a booking that has not
// been early checked out.
func (r *Resort) NumberOfResidents() int {
	seen := make(map[Dni]struct{})

	for _, booking := range r.ledger {
		if booking.earlyCheckOut || booking.resident == nil {
			continue
		}

		seen[booking.resident.Dni()] = struct{}{}
	}

	return len(seen)
}

// AddRoom inserts the room, or overwrites the roster entry carrying the same
// number. Overwriting keeps the original roster position.
func (r *Resort) AddRoom(room *Room) {
	if idx, ok := r.roomIdx[room.Number()]; ok {
		r.rooms[idx] = room

		return
	}

	r.roomIdx[room.Number()] = len(r.rooms)
	r.rooms = append(r.rooms, room)
}

// FindRoomByNumber returns the roster room carrying number, or nil.
func (r *Resort) FindRoomByNumber(number RoomNumber) *Room {
	for _, room := range r.rooms {
		if room.Number() == number {
			return room
		}
	}

	return nil
}

// RemoveRoom drops every roster entry equal to room. No-op when absent.
func (r *Resort) RemoveRoom(room *Room) {
	kept := r.rooms[:0]

	for _, candidate := range r.rooms {
		if candidate.Equal(room) {
			continue
		}

		kept = append(kept, candidate)
	}

	r.rooms = kept

	r.roomIdx = make(map[RoomNumber]int, len(r.rooms))
	for idx, candidate := range r.rooms {
		r.roomIdx[candidate.Number()] = idx
	}
}

func (r *Resort) nextNumber() int {
	if r.numbers != nil {
		return r.numbers.Next()
	}

	return len(r.ledger) + 1
}

func (r *Resort) availableRoom(date time.Time) *Room {
	for _, room := range r.rooms {
		if !r.IsBusyRoom(room, date) {
			return room
		}
	}

	return nil
}

// CheckIn opens a stay for resident over [checkIn, checkOut]. A nil room
// requests auto-assignment: the first roster room free on checkIn. A
// rejected check-in leaves the resort untouched; the status tells why.
func (r *Resort) CheckIn(checkIn, checkOut time.Time, resident *Resident, room *Room) CheckInStatus {
	if !DateRangeValid(checkIn, checkOut) {
		return StatusRejectedInvalidRange
	}

	if room == nil {
		room = r.availableRoom(checkIn)
		if room == nil {
			return StatusRejectedNoRoomAvailable
		}
	}

	if r.IsBusyRoom(room, checkIn) {
		return StatusRejectedRoomBusy
	}

	r.ledger = append(r.ledger, NewBooking(r.nextNumber(), checkIn, checkOut, room, resident))

	return StatusApplied
}

// IsBusyRoom reports whether room is occupied on date. Only the
// earliest-inserted booking for the room is examined; later bookings for the
// same room never influence the answer. That matches the system this one
// replaces and is relied on by the auto-assignment flow.
func (r *Resort) IsBusyRoom(room *Room, date time.Time) bool {
	if room == nil {
		return false
	}

	for _, booking := range r.ledger {
		if booking.room.Equal(room) {
			return !DateAvailable(booking.checkIn, booking.checkOut, date)
		}
	}

	return false
}

// CheckOut ends the stay of resident on newCheckOut, marking the booking as
// an early check-out. Only the first ledger entry held by the resident is
// amended, even when they hold several. Reports whether a booking was
// amended.
func (r *Resort) CheckOut(newCheckOut time.Time, resident *Resident) bool {
	for idx, booking := range r.ledger {
		if booking.resident == nil || !booking.resident.Equal(resident) {
			continue
		}

		r.ledger[idx] = booking.WithCheckOut(newCheckOut)

		return true
	}

	return false
}

// ChangeRoom moves every stay held by resident into newRoom: each existing
// booking is truncated to end on checkIn, and a fresh booking for newRoom
// over [checkIn, checkOut] is appended. Bookings appended by the call itself
// are not revisited. Returns how many stays were moved.
func (r *Resort) ChangeRoom(checkIn, checkOut time.Time, resident *Resident, newRoom *Room) int {
	moved := 0

	ledgerLen := len(r.ledger)
	for idx := 0; idx < ledgerLen; idx++ {
		booking := r.ledger[idx]
		if booking.resident == nil || !booking.resident.Equal(resident) {
			continue
		}

		r.ledger[idx] = booking.truncatedTo(checkIn)
		r.ledger = append(r.ledger, NewBooking(r.nextNumber(), checkIn, checkOut, newRoom, resident))
		moved++
	}

	return moved
}

// AvailableRooms lists the roster rooms free on date, in roster order.
func (r *Resort) AvailableRooms(date time.Time) []*Room {
	var available []*Room

	for _, room := range r.rooms {
		if !r.IsBusyRoom(room, date) {
			available = append(available, room)
		}
	}

	return available
}

// ResidentsInRooms maps dni to every resident ever booked, amended stays
// included. Later bookings win for display attributes.
func (r *Resort) ResidentsInRooms() map[Dni]*Resident {
	residents := make(map[Dni]*Resident)

	for _, booking := range r.ledger {
		if booking.resident == nil {
			continue
		}

		residents[booking.resident.Dni()] = booking.resident
	}

	return residents
}

// ResidentsInRoomsOn maps dni to the residents staying on date: bookings not
// early checked out whose interval contains date.
func (r *Resort) ResidentsInRoomsOn(date time.Time) map[Dni]*Resident {
	residents := make(map[Dni]*Resident)

	for _, booking := range r.ledger {
		if booking.resident == nil || booking.earlyCheckOut {
			continue
		}

		if DateAvailable(booking.checkIn, booking.checkOut, date) {
			continue
		}

		residents[booking.resident.Dni()] = booking.resident
	}

	return residents
}

// AgeAverageByGender averages resident ages as of asOf, bucketed by gender,
// over every resident ever booked. A gender nobody carries averages to 0.
func (r *Resort) AgeAverageByGender(asOf time.Time) map[Gender]float64 {
	ages := make(map[Gender][]float64)

	for _, resident := range r.ResidentsInRooms() {
		ages[resident.Gender()] = append(ages[resident.Gender()], float64(resident.Age(asOf)))
	}

	for _, gender := range []Gender{Female, Male} {
		if _, ok := ages[gender]; !ok {
			ages[gender] = []float64{0}
		}
	}

	averages := make(map[Gender]float64, len(ages))

	for gender, bucket := range ages {
		sum := 0.0
		for _, age := range bucket {
			sum += age
		}

		averages[gender] = sum / float64(len(bucket))
	}

	return averages
}
