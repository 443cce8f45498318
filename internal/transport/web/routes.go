package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Mexidense/la-mar-sala-resort/internal/report"
	"github.com/Mexidense/la-mar-sala-resort/internal/resort"
)

const apiDateLayout = "2006-01-02"

type checkInRequest struct {
	FullName   string `json:"full_name"`
	Dni        string `json:"dni"`
	Gender     string `json:"gender"`
	Birthdate  string `json:"birthdate"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	RoomNumber string `json:"room_number,omitempty"`
}

type checkOutRequest struct {
	Dni         string `json:"dni"`
	NewCheckOut string `json:"new_check_out"`
}

type changeRoomRequest struct {
	Dni        string `json:"dni"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	RoomNumber string `json:"room_number"`
}

func parseDate(inputErr *InputError, field, value string) time.Time {
	d, err := time.Parse(apiDateLayout, value)
	if err != nil {
		inputErr.addError(field, fmt.Sprintf("provide a %s date", apiDateLayout))

		return time.Time{}
	}

	return d
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(text)); err != nil {
		s.l.LogErrorf("Could not write response: %v", err.Error())
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return false
	}

	return true
}

func (s *Server) checkInHandler(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if !s.decode(w, r, &req) {
		return
	}

	inputErr := newInputError()

	dni, err := resort.NewDni(req.Dni)
	if err != nil {
		inputErr.addError("dni", "provide a non-empty dni")
	}

	gender, err := resort.NewGender(req.Gender)
	if err != nil {
		inputErr.addError("gender", `provide gender "F" or "M"`)
	}

	birthdate := parseDate(inputErr, "birthdate", req.Birthdate)
	checkIn := parseDate(inputErr, "check_in", req.CheckIn)
	checkOut := parseDate(inputErr, "check_out", req.CheckOut)

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	resident := resort.NewResident(req.FullName, dni, gender, birthdate)

	err = s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		var room *resort.Room

		if req.RoomNumber != "" {
			number, err := resort.NewRoomNumber(req.RoomNumber)
			if err != nil {
				s.writeJSON(w, http.StatusBadRequest, map[string]string{"room_number": "provide a non-empty room number"})

				return nil
			}

			room = rst.FindRoomByNumber(number)
			if room == nil {
				s.writeJSON(w, http.StatusNotFound, map[string]string{"room_number": "room is not part of the roster"})

				return nil
			}
		}

		status := rst.CheckIn(checkIn, checkOut, resident, room)
		s.metrics.ObserveCheckIn(status)

		switch status {
		case resort.StatusApplied:
			s.writeJSON(w, http.StatusCreated, map[string]any{
				"status":   status.String(),
				"bookings": rst.NumberOfBookings(),
			})
		case resort.StatusRejectedInvalidRange:
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"status": status.String()})
		case resort.StatusRejectedNoRoomAvailable, resort.StatusRejectedRoomBusy:
			s.writeJSON(w, http.StatusPreconditionFailed, map[string]string{"status": status.String()})
		}

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not check in: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) checkOutHandler(w http.ResponseWriter, r *http.Request) {
	var req checkOutRequest
	if !s.decode(w, r, &req) {
		return
	}

	inputErr := newInputError()

	dni, err := resort.NewDni(req.Dni)
	if err != nil {
		inputErr.addError("dni", "provide a non-empty dni")
	}

	newCheckOut := parseDate(inputErr, "new_check_out", req.NewCheckOut)

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	err = s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		resident := rst.ResidentsInRooms()[dni]

		applied := resident != nil && rst.CheckOut(newCheckOut, resident)
		if applied {
			s.metrics.CheckOuts.Inc()
		}

		s.writeJSON(w, http.StatusOK, map[string]bool{"applied": applied})

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not check out: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) changeRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req changeRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	inputErr := newInputError()

	dni, err := resort.NewDni(req.Dni)
	if err != nil {
		inputErr.addError("dni", "provide a non-empty dni")
	}

	number, err := resort.NewRoomNumber(req.RoomNumber)
	if err != nil {
		inputErr.addError("room_number", "provide a non-empty room number")
	}

	checkIn := parseDate(inputErr, "check_in", req.CheckIn)
	checkOut := parseDate(inputErr, "check_out", req.CheckOut)

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	err = s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		room := rst.FindRoomByNumber(number)
		if room == nil {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"room_number": "room is not part of the roster"})

			return nil
		}

		resident := rst.ResidentsInRooms()[dni]

		moved := 0
		if resident != nil {
			moved = rst.ChangeRoom(checkIn, checkOut, resident, room)
			s.metrics.RoomChanges.Add(float64(moved))
		}

		s.writeJSON(w, http.StatusOK, map[string]int{"moved": moved})

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not change room: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) availableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	inputErr := newInputError()
	date := parseDate(inputErr, "date", r.URL.Query().Get("date"))

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	err := s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		s.writeText(w, report.RoomList(rst.AvailableRooms(date)))

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not list available rooms: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) residentsHandler(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	inputErr := newInputError()

	var date time.Time
	if rawDate != "" {
		date = parseDate(inputErr, "date", rawDate)
	}

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	err := s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		residents := rst.ResidentsInRooms()
		if rawDate != "" {
			residents = rst.ResidentsInRoomsOn(date)
		}

		s.writeText(w, report.ResidentList(residents))

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not list residents: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) ageAverageHandler(w http.ResponseWriter, r *http.Request) {
	inputErr := newInputError()
	date := parseDate(inputErr, "date", r.URL.Query().Get("date"))

	if inputErr.fieldsCount() > 0 {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	err := s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		s.writeText(w, report.AgeAverages(rst.AgeAverageByGender(date)))

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not compute age averages: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) bookingsHandler(w http.ResponseWriter, _ *http.Request) {
	err := s.store.Do(s.conf.ResortName, func(rst *resort.Resort) error {
		s.writeText(w, report.BookingList(rst.Bookings()))

		return nil
	})
	if err != nil {
		s.l.LogErrorf("Could not list bookings: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	wrap := func(h http.HandlerFunc) http.Handler {
		return s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware())
	}

	r.Handle("POST /api/check-in/v1", wrap(s.checkInHandler))
	r.Handle("POST /api/check-out/v1", wrap(s.checkOutHandler))
	r.Handle("POST /api/change-room/v1", wrap(s.changeRoomHandler))
	r.Handle("GET /api/rooms/available/v1", wrap(s.availableRoomsHandler))
	r.Handle("GET /api/bookings/v1", wrap(s.bookingsHandler))
	r.Handle("GET /api/residents/v1", wrap(s.residentsHandler))
	r.Handle("GET /api/stats/age-average/v1", wrap(s.ageAverageHandler))
	r.Handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), wrap(s.livenessHandler))
	r.Handle("GET /metrics", s.metrics.Handler())
}
