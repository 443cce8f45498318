package resort

import "fmt"

// Room is a physical unit of the resort. It carries nothing but its number
// and is never mutated after creation.
type Room struct {
	number RoomNumber
}

func NewRoom(number RoomNumber) *Room {
	return &Room{number: number}
}

func (r *Room) Number() RoomNumber {
	return r.number
}

func (r *Room) Equal(other *Room) bool {
	if other == nil {
		return false
	}

	return r.number == other.number
}

func (r *Room) Describe() string {
	return fmt.Sprintf("Room number: %s", r.number.Value())
}
