package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/textutil"
)

type slugRequest struct {
	Text string `json:"text"`
	textutil.SlugOptions
}

func (s *Server) textRoutes(r chi.Router) {
	r.Post("/lorem-ipsum/generate", s.lorem)
	r.Post("/slug/generate", s.slug)
}

func (s *Server) lorem(w http.ResponseWriter, r *http.Request) {
	var req textutil.LoremRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := textutil.Lorem(req)
	s.respond(w, r, "lorem_ipsum", map[string]string{"content": out}, err)
}

func (s *Server) slug(w http.ResponseWriter, r *http.Request) {
	var req slugRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := textutil.Slugify(req.Text, req.SlugOptions)
	s.respond(w, r, "slugify", map[string]string{"slug": out}, err)
}
