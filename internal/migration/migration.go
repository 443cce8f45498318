package migration

import (
	"fmt"
	"time"

	"github.com/Mexidense/la-mar-sala-resort/internal/idgen/simple"
	"github.com/Mexidense/la-mar-sala-resort/internal/logger"
	"github.com/Mexidense/la-mar-sala-resort/internal/resort"
)

// ResortName is the property every endpoint of this process serves.
const ResortName = "La Mar Salá"

type storage interface {
	Add(r *resort.Resort) error
}

func rooms(numbers ...string) ([]*resort.Room, error) {
	out := make([]*resort.Room, 0, len(numbers))

	for _, number := range numbers {
		n, err := resort.NewRoomNumber(number)
		if err != nil {
			return nil, fmt.Errorf("room number %q: %w", number, err)
		}

		out = append(out, resort.NewRoom(n))
	}

	return out, nil
}

func date(year, month, day int) time.Time {
	return resort.Day(year, time.Month(month), day)
}

// Up seeds the process with the property roster and a couple of demo stays.
func Up(l *logger.Logger, storage storage) error {
	roster, err := rooms("101", "102", "103", "201", "202")
	if err != nil {
		return fmt.Errorf("build roster: %w", err)
	}

	r := resort.New(ResortName, roster, simple.New())

	dni, err := resort.NewDni("27272727")
	if err != nil {
		return fmt.Errorf("build demo resident: %w", err)
	}

	demo := resort.NewResident("Martinez Gomez, Adrian", dni, resort.Male, date(1940, 2, 12))

	if status := r.CheckIn(date(2007, 1, 12), date(2007, 6, 12), demo, nil); !status.Applied() {
		return fmt.Errorf("seed demo stay: %v: %w", status, ErrSeedRejected)
	}

	if err := storage.Add(r); err != nil {
		return fmt.Errorf("register resort: %w", err)
	}

	l.LogInfo("Seeded resort %q: %d rooms, %d bookings", r.Name(), r.NumberOfRooms(), r.NumberOfBookings())

	return nil
}
