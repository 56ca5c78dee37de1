package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/xutil/formatconv"
)

type resultBody struct {
	Result string `json:"result"`
}

type codegenRequest struct {
	JSONData      string `json:"json_data"`
	InterfaceName string `json:"interface_name"`
	ClassName     string `json:"class_name"`
	TypeName      string `json:"type_name"`
	Package       string `json:"package"`
	OmitEmpty     bool   `json:"omit_empty"`
}

type csvRequest struct {
	JSONData  string `json:"json_data"`
	Separator string `json:"separator"`
}

func (s *Server) formatRoutes(r chi.Router) {
	r.Route("/yaml-json", func(r chi.Router) {
		r.Post("/yaml-to-json", s.textConversion("yaml_to_json", "yaml_text", formatconv.YAMLToJSON))
		r.Post("/json-to-yaml", s.textConversion("json_to_yaml", "json_text", formatconv.JSONToYAML))
		r.Post("/yaml-to-json-file", s.fileConversion("yaml_to_json", formatconv.YAMLFileToJSON))
		r.Post("/json-to-yaml-file", s.fileConversion("json_to_yaml", formatconv.JSONFileToYAML))
	})
	r.Route("/xml-json", func(r chi.Router) {
		r.Post("/xml-to-json", s.textConversion("xml_to_json", "xml_text", formatconv.XMLToJSON))
		r.Post("/json-to-xml", s.textConversion("json_to_xml", "json_text", formatconv.JSONToXML))
		r.Post("/xml-to-json-file", s.fileConversion("xml_to_json", formatconv.XMLFileToJSON))
		r.Post("/json-to-xml-file", s.fileConversion("json_to_xml", formatconv.JSONFileToXML))
	})
	r.Route("/csv-json", func(r chi.Router) {
		r.Post("/csv-to-json", s.csvToJSON)
		r.Post("/json-to-csv", s.jsonToCSV)
	})
	r.Route("/json-ts", func(r chi.Router) {
		r.Post("/json-to-typescript", s.codegen("json_to_typescript", typescript))
		r.Post("/json-to-typescript-file", s.codegenFile("json_to_typescript", "interface_name", typescript))
	})
	r.Route("/json-python", func(r chi.Router) {
		r.Post("/json-to-python", s.codegen("json_to_python", python(formatconv.Dataclass)))
		r.Post("/json-to-python-file", s.codegenFile("json_to_python", "class_name", python(formatconv.Dataclass)))
	})
	r.Route("/json-pydantic", func(r chi.Router) {
		r.Post("/json-to-pydantic", s.codegen("json_to_pydantic", python(formatconv.Pydantic)))
		r.Post("/json-to-pydantic-file", s.codegenFile("json_to_pydantic", "class_name", python(formatconv.Pydantic)))
	})
	r.Route("/json-go", func(r chi.Router) {
		r.Post("/json-to-go", s.codegen("json_to_go", golang))
		r.Post("/json-to-go-file", s.codegenFile("json_to_go", "type_name", golang))
	})
}

// textConversion handles {"<field>": "..."} bodies.
func (s *Server) textConversion(operation, field string, fn func(string) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]*string
		if err := decodeJSON(r, &body); err != nil {
			s.writeError(w, r, err)
			return
		}
		text, ok := body[field]
		if !ok || text == nil {
			s.writeError(w, r, missing(field))
			return
		}
		out, err := fn(*text)
		s.respond(w, r, operation, resultBody{Result: out}, err)
	}
}

// fileConversion handles multipart uploads in the "file" field.
func (s *Server) fileConversion(operation string, fn func([]byte) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.readUpload(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out, err := fn(data)
		s.respond(w, r, operation, resultBody{Result: out}, err)
	}
}

func (s *Server) csvToJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := formatconv.CSVToJSON(data, r.FormValue("separator"))
	s.respond(w, r, "csv_to_json", resultBody{Result: out}, err)
}

func (s *Server) jsonToCSV(w http.ResponseWriter, r *http.Request) {
	var req csvRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := formatconv.JSONToCSV(req.JSONData, req.Separator)
	s.respond(w, r, "json_to_csv", resultBody{Result: out}, err)
}

// generator turns JSON text into source code. name is the top-level
// declaration name; empty selects the generator default.
type generator func(text, name string, req codegenRequest) (string, error)

func typescript(text, name string, req codegenRequest) (string, error) {
	if name == "" {
		name = req.InterfaceName
	}
	return formatconv.JSONToTypeScript(text, name)
}

func python(style formatconv.PythonStyle) generator {
	return func(text, name string, req codegenRequest) (string, error) {
		if name == "" {
			name = req.ClassName
		}
		return formatconv.JSONToPython(text, name, style)
	}
}

func golang(text, name string, req codegenRequest) (string, error) {
	if name == "" {
		name = req.TypeName
	}
	return formatconv.JSONToGo(text, formatconv.GoOptions{
		TypeName:  name,
		Package:   req.Package,
		OmitEmpty: req.OmitEmpty,
	})
}

func (s *Server) codegen(operation string, gen generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req codegenRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		out, err := gen(req.JSONData, "", req)
		s.respond(w, r, operation, resultBody{Result: out}, err)
	}
}

// codegenFile reads the JSON from an upload and the declaration name from
// the nameField form value.
func (s *Server) codegenFile(operation, nameField string, gen generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := s.uploadText(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		req := codegenRequest{
			Package:   r.FormValue("package"),
			OmitEmpty: r.FormValue("omit_empty") == "true",
		}
		out, err := gen(text, r.FormValue(nameField), req)
		s.respond(w, r, operation, resultBody{Result: out}, err)
	}
}
