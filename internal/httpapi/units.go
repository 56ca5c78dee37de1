package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/unitconv"
)

// legacyDomains keep their pre-registry POST /api/{domain}/convert routes.
var legacyDomains = []string{
	"length", "weight", "temperature", "area", "bit-byte",
	"energy", "speed", "time", "volume",
}

type convertRequest struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
}

type domainInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Canonical  string   `json:"canonical"`
	Precision  int      `json:"precision"`
	Constraint string   `json:"constraint"`
	Units      []string `json:"units"`
}

func (s *Server) unitRoutes(r chi.Router) {
	r.Get("/unit-converter", s.listDomains)
	r.Post("/unit-converter/{domain}", s.convertUnits)
	for _, name := range legacyDomains {
		r.Post("/"+name+"/convert", s.convertDomain(name))
	}
	r.Get("/px-rem-em/convert", s.convertCSS)
}

func (s *Server) listDomains(w http.ResponseWriter, r *http.Request) {
	domains := unitconv.Domains()
	out := make([]domainInfo, 0, len(domains))
	for _, d := range domains {
		out = append(out, domainInfo{
			Name:       d.Name(),
			Title:      d.Title(),
			Canonical:  d.Canonical(),
			Precision:  d.Precision(),
			Constraint: d.Constraint().String(),
			Units:      d.Units(),
		})
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) convertUnits(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, chi.URLParam(r, "domain"))
}

func (s *Server) convertDomain(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.convert(w, r, name)
	}
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request, name string) {
	d, ok := unitconv.Lookup(name)
	if !ok {
		s.writeError(w, r, fmt.Errorf("%w: unknown conversion domain %q", errNotFound, name))
		return
	}
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Value == nil {
		s.writeError(w, r, missing("value"))
		return
	}
	res, err := d.Convert(*req.Value, req.Unit)
	s.respond(w, r, "convert_units", res, err)
}

func (s *Server) convertCSS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := q.Get("conversion_type")
	if kind == "" {
		s.writeError(w, r, missing("conversion_type"))
		return
	}
	if q.Get("value") == "" {
		s.writeError(w, r, missing("value"))
		return
	}
	value, err := queryFloat(r, "value", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	root, err := queryFloat(r, "root_font_size", unitconv.DefaultFontSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	parent, err := queryFloat(r, "parent_font_size", unitconv.DefaultFontSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := unitconv.ConvertCSS(unitconv.CSSKind(kind), value, root, parent)
	s.respond(w, r, "convert_css", res, err)
}
