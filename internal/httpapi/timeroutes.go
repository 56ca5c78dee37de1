package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/timeconv"
)

type unixRequest struct {
	Timestamp *int64 `json:"timestamp"`
}

type utcRequest struct {
	DatetimeUTC string `json:"datetime_utc"`
}

type timezoneRequest struct {
	DatetimeStr  string `json:"datetime_str"`
	FromTimezone string `json:"from_timezone"`
	ToTimezone   string `json:"to_timezone"`
}

func (s *Server) timeRoutes(r chi.Router) {
	r.Post("/unix-utc/unix-to-utc", s.unixToUTC)
	r.Post("/unix-utc/utc-to-unix", s.utcToUnix)
	r.Post("/timezone-converter", s.convertTimezone)
	r.Post("/timezone-converter/", s.convertTimezone)
	r.Get("/timezone-converter/all-timezones", s.timezones)
}

func (s *Server) unixToUTC(w http.ResponseWriter, r *http.Request) {
	var req unixRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Timestamp == nil {
		s.writeError(w, r, missing("timestamp"))
		return
	}
	res, err := timeconv.UnixToUTC(*req.Timestamp)
	s.respond(w, r, "unix_to_utc", res, err)
}

func (s *Server) utcToUnix(w http.ResponseWriter, r *http.Request) {
	var req utcRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := timeconv.UTCToUnix(req.DatetimeUTC)
	s.respond(w, r, "utc_to_unix", res, err)
}

func (s *Server) convertTimezone(w http.ResponseWriter, r *http.Request) {
	var req timezoneRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := timeconv.ConvertTimezone(req.DatetimeStr, req.FromTimezone, req.ToTimezone)
	s.respond(w, r, "convert_timezone", res, err)
}

func (s *Server) timezones(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string][]string{"timezones": timeconv.Timezones()})
}
