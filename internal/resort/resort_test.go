package resort

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Mexidense/la-mar-sala-resort/internal/idgen/simple"
)

type ResortSuite struct {
	suite.Suite

	resort *Resort

	roomOne   *Room
	roomTwo   *Room
	roomThree *Room
	roomFour  *Room
	roomFive  *Room

	adrian *Resident
	luisa  *Resident
	luis   *Resident
	ana    *Resident
}

func TestResortSuite(t *testing.T) {
	suite.Run(t, new(ResortSuite))
}

func (s *ResortSuite) SetupTest() {
	t := s.T()

	s.roomOne = mustRoom(t, "101")
	s.roomTwo = mustRoom(t, "102")
	s.roomThree = mustRoom(t, "103")
	s.roomFour = mustRoom(t, "201")
	s.roomFive = mustRoom(t, "202")

	s.adrian = mustResident(t, "Martinez Gomez, Adrian", "27272727", "M", Day(1940, time.February, 12))
	s.luisa = mustResident(t, "Lopez Lopez, Luisa", "27272728", "F", Day(1940, time.March, 12))
	s.luis = mustResident(t, "Roquero Sanchez, Luis", "27272729", "M", Day(1940, time.April, 12))
	s.ana = mustResident(t, "Del Aguila Imperial, Ana Maria", "27272730", "F", Day(1950, time.February, 12))

	rooms := []*Room{s.roomOne, s.roomTwo, s.roomThree, s.roomFour, s.roomFive}

	s.resort = New("La Mar Salá", rooms, simple.New())
}

func (s *ResortSuite) TestNewFiltersNilRooms() {
	r := New("La Mar Salá", []*Room{s.roomOne, nil, s.roomTwo, nil}, nil)

	s.Equal(2, r.NumberOfRooms())
	s.Equal([]*Room{s.roomOne, s.roomTwo}, r.Rooms())
}

func (s *ResortSuite) TestAddRoom() {
	s.Equal(5, s.resort.NumberOfRooms())

	s.resort.AddRoom(mustRoom(s.T(), "501"))
	s.Equal(6, s.resort.NumberOfRooms())

	for i := 0; i < 100; i++ {
		s.resort.AddRoom(mustRoom(s.T(), "80"+strconv.Itoa(i)))
	}

	s.Equal(106, s.resort.NumberOfRooms())
}

func (s *ResortSuite) TestAddRoomOverwritesByNumberKeepingPosition() {
	replacement := mustRoom(s.T(), "102")
	s.resort.AddRoom(replacement)

	s.Equal(5, s.resort.NumberOfRooms())
	s.Same(replacement, s.resort.Rooms()[1])
}

func (s *ResortSuite) TestFindRoomByNumberRoundTrip() {
	number, err := NewRoomNumber("101")
	s.Require().NoError(err)

	room := s.resort.FindRoomByNumber(number)
	s.Require().NotNil(room)
	s.True(room.Equal(s.roomOne))
	s.False(room.Equal(s.roomTwo))

	missing, err := NewRoomNumber("701")
	s.Require().NoError(err)
	s.Nil(s.resort.FindRoomByNumber(missing))
}

func (s *ResortSuite) TestRemoveRoom() {
	s.resort.RemoveRoom(s.roomOne)
	s.Equal(4, s.resort.NumberOfRooms())
	s.Equal([]*Room{s.roomTwo, s.roomThree, s.roomFour, s.roomFive}, s.resort.Rooms())

	// removing again is a no-op
	s.resort.RemoveRoom(s.roomOne)
	s.Equal(4, s.resort.NumberOfRooms())

	// roster index still resolves after compaction
	number, err := NewRoomNumber("202")
	s.Require().NoError(err)
	s.True(s.resort.FindRoomByNumber(number).Equal(s.roomFive))
}

// TestCheckInAndResidents is scenario A: two stays, one auto-assigned.
func (s *ResortSuite) TestCheckInAndResidents() {
	status := s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne)
	s.Require().True(status.Applied())

	status = s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.June, 12), s.luisa, nil)
	s.Require().True(status.Applied())

	s.Equal(2, s.resort.NumberOfBookings())
	s.Equal(2, s.resort.NumberOfResidents())

	// room 101 was busy on Luisa's check-in day, so she got room 102
	bookings := s.resort.Bookings()
	s.True(bookings[1].Room().Equal(s.roomTwo))
}

func (s *ResortSuite) TestCheckInRejectsInvalidRange() {
	status := s.resort.CheckIn(Day(2007, time.June, 12), Day(2007, time.January, 12), s.adrian, s.roomOne)

	s.Equal(StatusRejectedInvalidRange, status)
	s.Equal(0, s.resort.NumberOfBookings())
	s.Equal(0, s.resort.NumberOfResidents())
}

func (s *ResortSuite) TestCheckInRejectsBusyRoom() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())

	status := s.resort.CheckIn(Day(2007, time.March, 1), Day(2007, time.March, 5), s.luisa, s.roomOne)

	s.Equal(StatusRejectedRoomBusy, status)
	s.Equal(1, s.resort.NumberOfBookings())
}

func (s *ResortSuite) TestCheckInRejectsWhenNoRoomFree() {
	checkIn := Day(2007, time.January, 12)
	checkOut := Day(2007, time.June, 12)

	for _, resident := range []*Resident{s.adrian, s.luisa, s.luis, s.ana} {
		s.Require().True(s.resort.CheckIn(checkIn, checkOut, resident, nil).Applied())
	}

	extra := mustResident(s.T(), "Quinto Ocupante", "27272731", "M", Day(1960, time.January, 1))
	s.Require().True(s.resort.CheckIn(checkIn, checkOut, extra, nil).Applied())

	sixth := mustResident(s.T(), "Sexto Ocupante", "27272732", "F", Day(1960, time.January, 2))
	status := s.resort.CheckIn(checkIn, checkOut, sixth, nil)

	s.Equal(StatusRejectedNoRoomAvailable, status)
	s.Equal(5, s.resort.NumberOfBookings())
}

// TestSameResidentMayHoldSeveralRooms: overlapping stays in different rooms
// are allowed for one resident.
func (s *ResortSuite) TestSameResidentMayHoldSeveralRooms() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomTwo).Applied())

	s.Equal(2, s.resort.NumberOfBookings())
	s.Equal(1, s.resort.NumberOfResidents())
}

func (s *ResortSuite) TestBookingNumbersAreSequential() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.June, 12), s.luisa, nil).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.March, 12), s.luis, nil).Applied())

	for idx, booking := range s.resort.Bookings() {
		s.Equal(idx+1, booking.Number())
	}
}

func (s *ResortSuite) TestIsBusyRoomIdempotent() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())

	probe := Day(2007, time.March, 1)
	first := s.resort.IsBusyRoom(s.roomOne, probe)
	second := s.resort.IsBusyRoom(s.roomOne, probe)

	s.True(first)
	s.Equal(first, second)
}

// TestIsBusyRoomExaminesEarliestBookingOnly pins down the historical
// first-match behaviour: once a room carries a booking, later bookings for
// the same room never influence the busy test.
func (s *ResortSuite) TestIsBusyRoomExaminesEarliestBookingOnly() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.January, 20), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 1), Day(2007, time.February, 10), s.luisa, s.roomOne).Applied())

	// February 5th falls inside the second stay, yet the room reports free
	s.False(s.resort.IsBusyRoom(s.roomOne, Day(2007, time.February, 5)))
	s.True(s.resort.IsBusyRoom(s.roomOne, Day(2007, time.January, 15)))
}

// TestCheckOut is scenario B: an early check-out keeps the ledger length and
// drops the resident from the occupancy count.
func (s *ResortSuite) TestCheckOut() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.June, 12), s.luisa, nil).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.March, 12), s.luis, nil).Applied())

	applied := s.resort.CheckOut(Day(2007, time.May, 12), s.adrian)

	s.True(applied)
	s.Equal(3, s.resort.NumberOfBookings())
	s.Equal(2, s.resort.NumberOfResidents())

	amended := s.resort.Bookings()[0]
	s.True(amended.EarlyCheckOut())
	s.Equal(Day(2007, time.May, 12), amended.CheckOut())
	s.Equal(1, amended.Number())
}

func (s *ResortSuite) TestCheckOutAmendsFirstBookingOnly() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomTwo).Applied())

	s.True(s.resort.CheckOut(Day(2007, time.May, 12), s.adrian))

	bookings := s.resort.Bookings()
	s.True(bookings[0].EarlyCheckOut())
	s.False(bookings[1].EarlyCheckOut())
}

func (s *ResortSuite) TestCheckOutWithoutBookingIsNoOp() {
	s.False(s.resort.CheckOut(Day(2007, time.May, 12), s.adrian))
	s.Equal(0, s.resort.NumberOfBookings())
}

// TestChangeRoom is scenario E: one stay moved yields two ledger entries and
// no new distinct resident.
func (s *ResortSuite) TestChangeRoom() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.luisa, s.roomTwo).Applied())
	residentsBefore := s.resort.NumberOfResidents()

	moved := s.resort.ChangeRoom(Day(2007, time.April, 12), Day(2007, time.August, 12), s.luisa, s.roomFour)

	s.Equal(1, moved)
	s.Equal(2, s.resort.NumberOfBookings())
	s.Equal(residentsBefore, s.resort.NumberOfResidents())

	bookings := s.resort.Bookings()

	// the old stay now ends where the new one starts, without the early flag
	s.Equal(Day(2007, time.April, 12), bookings[0].CheckOut())
	s.False(bookings[0].EarlyCheckOut())
	s.True(bookings[0].Room().Equal(s.roomTwo))

	s.Equal(2, bookings[1].Number())
	s.True(bookings[1].Room().Equal(s.roomFour))
	s.Equal(Day(2007, time.April, 12), bookings[1].CheckIn())
	s.Equal(Day(2007, time.August, 12), bookings[1].CheckOut())
}

func (s *ResortSuite) TestChangeRoomMovesEveryExistingStay() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomTwo).Applied())

	moved := s.resort.ChangeRoom(Day(2007, time.April, 12), Day(2007, time.August, 12), s.adrian, s.roomFive)

	s.Equal(2, moved)
	s.Equal(4, s.resort.NumberOfBookings())

	bookings := s.resort.Bookings()
	s.True(bookings[2].Room().Equal(s.roomFive))
	s.True(bookings[3].Room().Equal(s.roomFive))
}

// TestAvailableRooms is scenario D: exactly the rooms whose booking interval
// contains the date, boundaries included, are missing from the list.
func (s *ResortSuite) TestAvailableRooms() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomTwo).Applied())

	s.Equal(
		[]*Room{s.roomOne, s.roomThree, s.roomFour, s.roomFive},
		s.resort.AvailableRooms(Day(2007, time.March, 1)),
	)
	s.Equal(
		[]*Room{s.roomOne, s.roomThree, s.roomFour, s.roomFive},
		s.resort.AvailableRooms(Day(2007, time.January, 12)),
	)
	s.Equal(
		[]*Room{s.roomOne, s.roomThree, s.roomFour, s.roomFive},
		s.resort.AvailableRooms(Day(2007, time.June, 12)),
	)
	s.Equal(
		[]*Room{s.roomOne, s.roomTwo, s.roomThree, s.roomFour, s.roomFive},
		s.resort.AvailableRooms(Day(2007, time.June, 13)),
	)
}

func (s *ResortSuite) TestResidentsInRooms() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.February, 12), Day(2007, time.June, 12), s.luisa, nil).Applied())
	s.Require().True(s.resort.CheckOut(Day(2007, time.March, 12), s.adrian))

	// the dateless form sees every resident ever booked, amended or not
	allTime := s.resort.ResidentsInRooms()
	s.Len(allTime, 2)
	s.Same(s.adrian, allTime[s.adrian.Dni()])

	// on a date after Adrian's early check-out only Luisa remains
	onDate := s.resort.ResidentsInRoomsOn(Day(2007, time.April, 1))
	s.Len(onDate, 1)
	s.Same(s.luisa, onDate[s.luisa.Dni()])

	// outside every stay nobody is in a room
	s.Empty(s.resort.ResidentsInRoomsOn(Day(2008, time.January, 1)))
}

// TestAgeAverageByGender is scenario C, including the empty-resort shape.
func (s *ResortSuite) TestAgeAverageByGender() {
	asOf := Day(2007, time.March, 12)

	averages := s.resort.AgeAverageByGender(asOf)
	s.Equal(map[Gender]float64{Female: 0, Male: 0}, averages)

	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())

	averages = s.resort.AgeAverageByGender(asOf)
	s.Equal(map[Gender]float64{Female: 0, Male: 67}, averages)

	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.luisa, nil).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.luis, nil).Applied())
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.ana, nil).Applied())

	averages = s.resort.AgeAverageByGender(asOf)
	s.InDelta(62.0, averages[Female], 0.0001)
	s.InDelta(66.5, averages[Male], 0.0001)
}

func (s *ResortSuite) TestReturnedCollectionsAreCopies() {
	s.Require().True(s.resort.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, s.roomOne).Applied())

	rooms := s.resort.Rooms()
	rooms[0] = nil
	s.NotNil(s.resort.Rooms()[0])

	bookings := s.resort.Bookings()
	bookings[0] = Booking{}
	s.Equal(1, s.resort.Bookings()[0].Number())
}

func (s *ResortSuite) TestLedgerLengthNumberingFallback() {
	r := New("fallback", []*Room{s.roomOne, s.roomTwo}, nil)

	s.Require().True(r.CheckIn(Day(2007, time.January, 12), Day(2007, time.June, 12), s.adrian, nil).Applied())
	s.Require().True(r.CheckIn(Day(2007, time.July, 1), Day(2007, time.July, 5), s.luisa, nil).Applied())

	bookings := r.Bookings()
	s.Equal(1, bookings[0].Number())
	s.Equal(2, bookings[1].Number())
}
