package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/codec"
)

type textRequest struct {
	Text string `json:"text"`
}

type baseEncodeRequest struct {
	Text     string `json:"text"`
	BaseType string `json:"base_type"`
}

type baseEncodeResponse struct {
	InputText   string     `json:"input_text"`
	BaseType    codec.Base `json:"base_type"`
	EncodedText string     `json:"encoded_text"`
}

type baseDecodeRequest struct {
	EncodedText string `json:"encoded_text"`
	BaseType    string `json:"base_type"`
}

type baseDecodeResponse struct {
	EncodedText string     `json:"encoded_text"`
	BaseType    codec.Base `json:"base_type"`
	DecodedText string     `json:"decoded_text"`
}

type encodedResponse struct {
	OriginalText string `json:"original_text"`
	EncodedText  string `json:"encoded_text"`
}

type decodedResponse struct {
	EncodedText string `json:"encoded_text"`
	DecodedText string `json:"decoded_text"`
}

type caesarRequest struct {
	Text  string `json:"text"`
	Shift *int   `json:"shift"`
}

type cipherResponse struct {
	InputText  string `json:"input_text"`
	Shift      *int   `json:"shift,omitempty"`
	OutputText string `json:"output_text"`
}

type textToBaseRequest struct {
	InputText  string `json:"input_text"`
	TargetBase int    `json:"target_base"`
}

type baseToTextRequest struct {
	BaseText   string `json:"base_text"`
	SourceBase int    `json:"source_base"`
}

type baseConvertRequest struct {
	Number     string `json:"number"`
	SourceBase int    `json:"source_base"`
	TargetBase int    `json:"target_base"`
}

type hashRequest struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm"`
}

type hashResponse struct {
	Text       string              `json:"text"`
	Algorithm  codec.HashAlgorithm `json:"algorithm"`
	HashedText string              `json:"hashed_text"`
}

type jwtDecodeRequest struct {
	Token        string             `json:"token"`
	Secret       string             `json:"secret"`
	Algorithm    codec.JWTAlgorithm `json:"algorithm"`
	VerifyExpiry *bool              `json:"verify_expiry"`
}

func (s *Server) codecRoutes(r chi.Router) {
	r.Post("/base/encode", s.baseEncode)
	r.Post("/base/decode", s.baseDecode)

	r.Get("/url/encode", s.urlEncode)
	r.Get("/url/decode", s.urlDecode)

	r.Get("/html-entities/encode", s.htmlEncode)
	r.Post("/html-entities/encode", s.htmlEncode)
	r.Get("/html-entities/decode", s.htmlDecode)
	r.Post("/html-entities/decode", s.htmlDecode)

	r.Post("/morse/char-to-morse", s.toMorse)
	r.Post("/morse/morse-to-char", s.fromMorse)

	r.Post("/cipher/rot13", s.rot13)
	r.Post("/cipher/caesar", s.caesar)

	r.Post("/text-base/text-to-base", s.textToBase)
	r.Post("/text-base/base-to-text", s.baseToText)
	r.Post("/base-converter/base-convert", s.baseConvert)

	r.Post("/hash/generate", s.hash)

	r.Post("/jwt/encode", s.jwtEncode)
	r.Post("/jwt/decode", s.jwtDecode)
}

func (s *Server) baseEncode(w http.ResponseWriter, r *http.Request) {
	var req baseEncodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	base, err := codec.ParseBase(req.BaseType)
	if err != nil {
		s.respond(w, r, "base_encode", nil, err)
		return
	}
	out, err := codec.Encode(base, req.Text)
	s.respond(w, r, "base_encode", baseEncodeResponse{InputText: req.Text, BaseType: base, EncodedText: out}, err)
}

func (s *Server) baseDecode(w http.ResponseWriter, r *http.Request) {
	var req baseDecodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	base, err := codec.ParseBase(req.BaseType)
	if err != nil {
		s.respond(w, r, "base_decode", nil, err)
		return
	}
	out, err := codec.Decode(base, req.EncodedText)
	s.respond(w, r, "base_decode", baseDecodeResponse{EncodedText: req.EncodedText, BaseType: base, DecodedText: out}, err)
}

func (s *Server) urlEncode(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	out, err := codec.URLEncode(text)
	s.respond(w, r, "url_encode", encodedResponse{OriginalText: text, EncodedText: out}, err)
}

func (s *Server) urlDecode(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("encoded_text")
	out, err := codec.URLDecode(text)
	s.respond(w, r, "url_decode", decodedResponse{EncodedText: text, DecodedText: out}, err)
}

// textParam reads "text" from the query on GET and from the JSON body
// otherwise.
func textParam(r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		return r.URL.Query().Get("text"), nil
	}
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		return "", err
	}
	return req.Text, nil
}

func (s *Server) htmlEncode(w http.ResponseWriter, r *http.Request) {
	text, err := textParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, "html_encode", encodedResponse{OriginalText: text, EncodedText: codec.HTMLEscape(text)}, nil)
}

func (s *Server) htmlDecode(w http.ResponseWriter, r *http.Request) {
	text, err := textParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, r, "html_decode", decodedResponse{EncodedText: text, DecodedText: codec.HTMLUnescape(text)}, nil)
}

func (s *Server) toMorse(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.ToMorse(req.Text)
	s.respond(w, r, "morse_encode", map[string]string{"morse_code": out}, err)
}

func (s *Server) fromMorse(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.FromMorse(req.Text)
	s.respond(w, r, "morse_decode", map[string]string{"decoded_text": out}, err)
}

func (s *Server) rot13(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.ROT13(req.Text)
	s.respond(w, r, "rot13", cipherResponse{InputText: req.Text, OutputText: out}, err)
}

func (s *Server) caesar(w http.ResponseWriter, r *http.Request) {
	var req caesarRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Shift == nil {
		s.writeError(w, r, missing("shift"))
		return
	}
	out, err := codec.Caesar(req.Text, *req.Shift)
	s.respond(w, r, "caesar", cipherResponse{InputText: req.Text, Shift: req.Shift, OutputText: out}, err)
}

func (s *Server) textToBase(w http.ResponseWriter, r *http.Request) {
	var req textToBaseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.TextToBase(req.InputText, req.TargetBase)
	s.respond(w, r, "text_to_base", resultBody{Result: out}, err)
}

func (s *Server) baseToText(w http.ResponseWriter, r *http.Request) {
	var req baseToTextRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.BaseToText(req.BaseText, req.SourceBase)
	s.respond(w, r, "base_to_text", resultBody{Result: out}, err)
}

func (s *Server) baseConvert(w http.ResponseWriter, r *http.Request) {
	var req baseConvertRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := codec.ConvertBase(req.Number, req.SourceBase, req.TargetBase)
	s.respond(w, r, "base_convert", resultBody{Result: out}, err)
}

func (s *Server) hash(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	alg := codec.HashAlgorithm(req.Algorithm)
	out, err := codec.Hash(alg, req.Text)
	s.respond(w, r, "hash", hashResponse{Text: req.Text, Algorithm: alg, HashedText: out}, err)
}

func (s *Server) jwtEncode(w http.ResponseWriter, r *http.Request) {
	var req codec.JWTEncodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := codec.EncodeJWT(req)
	s.respond(w, r, "jwt_encode", res, err)
}

func (s *Server) jwtDecode(w http.ResponseWriter, r *http.Request) {
	var req jwtDecodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	verify := true
	if req.VerifyExpiry != nil {
		verify = *req.VerifyExpiry
	}
	res, err := codec.DecodeJWT(codec.JWTDecodeRequest{
		Token:        req.Token,
		Secret:       req.Secret,
		Algorithm:    req.Algorithm,
		VerifyExpiry: verify,
	})
	s.respond(w, r, "jwt_decode", res, err)
}
