// Package report renders resort query results as plain text. Everything here
// is a pure function over data already assembled by the aggregate.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mexidense/la-mar-sala-resort/internal/resort"
)

// Describer is anything that renders itself as a single text line.
type Describer interface {
	Describe() string
}

// Lines joins the descriptions of items, one per line, each line terminated
// by a newline.
func Lines(items []Describer) string {
	var sb strings.Builder

	for _, item := range items {
		sb.WriteString(item.Describe())
		sb.WriteString("\n")
	}

	return sb.String()
}

// RoomList renders rooms in the order given.
func RoomList(rooms []*resort.Room) string {
	items := make([]Describer, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, room)
	}

	return Lines(items)
}

// ResidentList renders residents sorted by dni for a stable listing.
func ResidentList(residents map[resort.Dni]*resort.Resident) string {
	dnis := make([]resort.Dni, 0, len(residents))
	for dni := range residents {
		dnis = append(dnis, dni)
	}

	sort.Slice(dnis, func(i, j int) bool { return dnis[i].Value() < dnis[j].Value() })

	items := make([]Describer, 0, len(dnis))
	for _, dni := range dnis {
		items = append(items, residents[dni])
	}

	return Lines(items)
}

// BookingList renders bookings in ledger order.
func BookingList(bookings []resort.Booking) string {
	items := make([]Describer, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, booking)
	}

	return Lines(items)
}

// AgeAverages renders per-gender age averages, female bucket first.
func AgeAverages(averages map[resort.Gender]float64) string {
	var sb strings.Builder

	for _, gender := range []resort.Gender{resort.Female, resort.Male} {
		average, ok := averages[gender]
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s: %f\n", gender.Value(), average))
	}

	return sb.String()
}
