package resort

import (
	"fmt"
	"time"
)

const describeDateLayout = "02-01-2006"

// Resident is a person staying, or having stayed, at the resort. Identity is
// the dni alone: name, gender and birthdate are display attributes.
type Resident struct {
	fullName  string
	dni       Dni
	gender    Gender
	birthdate time.Time
}

func NewResident(fullName string, dni Dni, gender Gender, birthdate time.Time) *Resident {
	return &Resident{
		fullName:  fullName,
		dni:       dni,
		gender:    gender,
		birthdate: birthdate,
	}
}

func (r *Resident) FullName() string {
	return r.fullName
}

func (r *Resident) Dni() Dni {
	return r.dni
}

func (r *Resident) Gender() Gender {
	return r.gender
}

func (r *Resident) Birthdate() time.Time {
	return r.birthdate
}

// Age is the number of whole years lived at asOf.
func (r *Resident) Age(asOf time.Time) int {
	years := asOf.Year() - r.birthdate.Year()
	if r.birthdate.AddDate(years, 0, 0).After(asOf) {
		years--
	}

	return years
}

func (r *Resident) Equal(other *Resident) bool {
	if other == nil {
		return false
	}

	return r.dni == other.dni
}

func (r *Resident) Describe() string {
	return fmt.Sprintf(
		"Full name: %s, DNI: %s, Gender: %s, Birthdate: %s",
		r.fullName,
		r.dni.Value(),
		r.gender.Value(),
		r.birthdate.Format(describeDateLayout),
	)
}
