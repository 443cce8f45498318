package resort

// Dni is the national identity document number of a resident. It is the only
// identity attribute of a Resident: two residents with the same dni are the
// same person regardless of name, gender or birthdate.
type Dni struct {
	value string
}

func NewDni(value string) (Dni, error) {
	if value == "" {
		return Dni{}, ErrInvalidDni
	}

	return Dni{value: value}, nil
}

func (d Dni) Value() string {
	return d.value
}

// RoomNumber identifies a physical room. Equality between rooms is equality
// between their numbers.
type RoomNumber struct {
	value string
}

func NewRoomNumber(value string) (RoomNumber, error) {
	if value == "" {
		return RoomNumber{}, ErrInvalidRoomNumber
	}

	return RoomNumber{value: value}, nil
}

func (n RoomNumber) Value() string {
	return n.value
}

type Gender string

const (
	Female Gender = "F"
	Male   Gender = "M"
)

func NewGender(value string) (Gender, error) {
	switch Gender(value) {
	case Female, Male:
		return Gender(value), nil
	}

	return "", ErrInvalidGender
}

func (g Gender) Value() string {
	return string(g)
}
