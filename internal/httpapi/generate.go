package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/generate"
)

// defaultBulk is the count used by the bulk endpoints when none is given.
const defaultBulk = 5

func (s *Server) generateRoutes(r chi.Router) {
	r.Get("/guid", s.guid)
	r.Get("/guid/", s.guid)
	r.Get("/guid/bulk", s.guids)

	r.Get("/ulid", s.ulid)
	r.Get("/ulid/", s.ulid)
	r.Get("/ulid/bulk", s.ulids)
	r.Get("/ulid/timestamp", s.ulidTimestamp)

	r.Get("/password/generate", s.password)
}

func (s *Server) guid(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, "uuid", map[string]string{"guid": generate.UUID()}, nil)
}

func (s *Server) guids(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "count", defaultBulk)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ids, err := generate.UUIDs(n)
	s.respond(w, r, "uuid", map[string][]string{"guids": ids}, err)
}

func (s *Server) ulid(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, "ulid", map[string]string{"ulid": generate.ULID()}, nil)
}

func (s *Server) ulids(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "count", defaultBulk)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ids, err := generate.ULIDs(n)
	s.respond(w, r, "ulid", map[string][]string{"ulids": ids}, err)
}

func (s *Server) ulidTimestamp(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("ULID_str")
	if id == "" {
		s.writeError(w, r, missing("ULID_str"))
		return
	}
	ts, err := generate.ULIDTime(id)
	s.respond(w, r, "ulid_timestamp", map[string]time.Time{"Timestamp": ts}, err)
}

func (s *Server) password(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("length") == "" {
		s.writeError(w, r, missing("length"))
		return
	}
	length, err := queryInt(r, "length", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := generate.DefaultPasswordOptions(length)
	for name, dst := range map[string]*bool{
		"include_numbers":   &opts.IncludeNumbers,
		"include_special":   &opts.IncludeSpecial,
		"include_uppercase": &opts.IncludeUppercase,
		"include_lowercase": &opts.IncludeLowercase,
	} {
		if *dst, err = queryBool(r, name, true); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	pw, err := generate.Password(opts)
	s.respond(w, r, "password", map[string]string{"password": pw}, err)
}
