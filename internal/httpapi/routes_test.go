package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConverter(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/unit-converter/length", map[string]any{"value": 1, "unit": "km"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, 1000.0, out["m"])
	assert.Equal(t, 100000.0, out["cm"])
	assert.True(t, strings.HasPrefix(rec.Body.String(), `{"mm":`), "keys keep unit order")

	rec = do(t, h, http.MethodPost, "/api/temperature/convert", map[string]any{"value": 0, "unit": "celsius"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 273.15, decode(t, rec)["kelvin"])

	rec = do(t, h, http.MethodPost, "/api/unit-converter/length", map[string]any{"value": 1, "unit": "parsec"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "Supported units: mm, cm, m")

	rec = do(t, h, http.MethodPost, "/api/unit-converter/length", map[string]any{"unit": "m"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/unit-converter/luminosity", map[string]any{"value": 1, "unit": "lm"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDomains(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/unit-converter", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var domains []domainInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &domains))
	require.NotEmpty(t, domains)
	for _, d := range domains {
		if d.Name == "temperature" {
			assert.Equal(t, "kelvin", d.Canonical)
			assert.Equal(t, 4, d.Precision)
			return
		}
	}
	t.Fatal("temperature domain missing")
}

func TestCSS(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/px-rem-em/convert?conversion_type=px-to-rem-em&value=32", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"px":32,"rem":2,"em":2}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/px-rem-em/convert?conversion_type=rem-to-px-em&value=2&root_font_size=10&parent_font_size=20", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"px":20,"rem":2,"em":1}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/px-rem-em/convert?conversion_type=px-to-rem-em", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/px-rem-em/convert?conversion_type=px-to-rem-em&value=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/px-rem-em/convert?conversion_type=px-to-rem-em&value=32&root_font_size=0&parent_font_size=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "root_font_size must be greater than zero")
}

func TestFormatConversions(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/yaml-json/yaml-to-json", map[string]string{"yaml_text": "a: 1\nb: [x, y]\n"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"a":1,"b":["x","y"]}`, decode(t, rec)["result"].(string))

	rec = do(t, h, http.MethodPost, "/api/yaml-json/json-to-yaml", map[string]string{"json_text": `{"a":1}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "a: 1\n", decode(t, rec)["result"])

	rec = do(t, h, http.MethodPost, "/api/yaml-json/yaml-to-json", map[string]string{"json_text": "a: 1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/xml-json/xml-to-json", map[string]string{"xml_text": `<a id="1">hi</a>`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"a":{"@id":"1","#text":"hi"}}`, decode(t, rec)["result"].(string))

	rec = do(t, h, http.MethodPost, "/api/csv-json/json-to-csv", map[string]string{"json_data": `[{"a":1,"b":{"c":2}}]`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["result"], "a,b_c")
}

func TestFileUploads(t *testing.T) {
	h := newTestServer(t)

	rec := upload(t, h, "/api/yaml-json/yaml-to-json-file", "name: xutil\n", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"name":"xutil"}`, decode(t, rec)["result"].(string))

	rec = upload(t, h, "/api/csv-json/csv-to-json", "a.b,c\n1,x\n", map[string]string{"separator": "."})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[{"a":{"b":1},"c":"x"}]`, decode(t, rec)["result"].(string))

	rec = upload(t, h, "/api/json-ts/json-to-typescript-file", `{"id":1}`, map[string]string{"interface_name": "User"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["result"], "interface User {")

	rec = upload(t, h, "/api/yaml-json/yaml-to-json-file", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/yaml-json/yaml-to-json-file", map[string]string{"yaml_text": "a: 1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCodeGenerators(t *testing.T) {
	h := newTestServer(t)
	sample := `{"name":"x","tags":["a"]}`

	rec := do(t, h, http.MethodPost, "/api/json-ts/json-to-typescript", map[string]string{"json_data": sample, "interface_name": "Thing"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["result"], "interface Thing {")

	rec = do(t, h, http.MethodPost, "/api/json-python/json-to-python", map[string]string{"json_data": sample})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["result"], "@dataclass\nclass Root:")

	rec = do(t, h, http.MethodPost, "/api/json-pydantic/json-to-pydantic", map[string]string{"json_data": sample, "class_name": "Thing"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec)["result"], "class Thing(BaseModel):")

	rec = do(t, h, http.MethodPost, "/api/json-go/json-to-go", map[string]any{"json_data": sample, "type_name": "Thing", "package": "models"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)["result"].(string)
	assert.True(t, strings.HasPrefix(out, "package models\n"))
	assert.Contains(t, out, "type Thing struct {")

	rec = do(t, h, http.MethodPost, "/api/json-python/json-to-python", map[string]string{"json_data": "{"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCodecRoutes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   any
		want   string
	}{
		{"base encode", http.MethodPost, "/api/base/encode", map[string]string{"text": "hello", "base_type": "base64"},
			`{"input_text":"hello","base_type":"base64","encoded_text":"aGVsbG8="}`},
		{"base decode", http.MethodPost, "/api/base/decode", map[string]string{"encoded_text": "aGVsbG8=", "base_type": "BASE64"},
			`{"encoded_text":"aGVsbG8=","base_type":"base64","decoded_text":"hello"}`},
		{"url encode", http.MethodGet, "/api/url/encode?text=a%20b%2Fc", nil,
			`{"original_text":"a b/c","encoded_text":"a%20b%2Fc"}`},
		{"url decode", http.MethodGet, "/api/url/decode?encoded_text=a%2520b", nil,
			`{"encoded_text":"a%20b","decoded_text":"a b"}`},
		{"html encode get", http.MethodGet, "/api/html-entities/encode?text=%3Cb%3E", nil,
			`{"original_text":"<b>","encoded_text":"&lt;b&gt;"}`},
		{"html decode post", http.MethodPost, "/api/html-entities/decode", map[string]string{"text": "&amp;"},
			`{"encoded_text":"&amp;","decoded_text":"&"}`},
		{"morse", http.MethodPost, "/api/morse/char-to-morse", map[string]string{"text": "SOS"},
			`{"morse_code":"... --- ..."}`},
		{"morse decode", http.MethodPost, "/api/morse/morse-to-char", map[string]string{"text": "... --- ..."},
			`{"decoded_text":"SOS"}`},
		{"rot13", http.MethodPost, "/api/cipher/rot13", map[string]string{"text": "Hello"},
			`{"input_text":"Hello","output_text":"Uryyb"}`},
		{"caesar", http.MethodPost, "/api/cipher/caesar", map[string]any{"text": "abc", "shift": 1},
			`{"input_text":"abc","shift":1,"output_text":"bcd"}`},
		{"text to base", http.MethodPost, "/api/text-base/text-to-base", map[string]any{"input_text": "A", "target_base": 2},
			`{"result":"01000001"}`},
		{"base to text", http.MethodPost, "/api/text-base/base-to-text", map[string]any{"base_text": "41", "source_base": 16},
			`{"result":"A"}`},
		{"base convert", http.MethodPost, "/api/base-converter/base-convert", map[string]any{"number": "255", "source_base": 10, "target_base": 16},
			`{"result":"FF"}`},
		{"hash", http.MethodPost, "/api/hash/generate", map[string]string{"text": "hello", "algorithm": "sha256"},
			`{"text":"hello","algorithm":"sha256","hashed_text":"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodPost, "/api/cipher/caesar", map[string]string{"text": "abc"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/base/encode", map[string]string{"text": "x", "base_type": "base99"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJWTRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/jwt/encode", map[string]any{
		"payload":        map[string]any{"sub": "42"},
		"secret":         "supersecret",
		"algorithm":      "HS256",
		"expiry_minutes": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	enc := decode(t, rec)
	token := enc["token"].(string)
	assert.NotNil(t, enc["expires_at"])

	rec = do(t, h, http.MethodPost, "/api/jwt/decode", map[string]any{"token": token, "secret": "supersecret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dec := decode(t, rec)
	assert.Equal(t, "42", dec["payload"].(map[string]any)["sub"])
	assert.NotNil(t, dec["issued_at"])

	rec = do(t, h, http.MethodPost, "/api/jwt/decode", map[string]any{"token": token, "secret": "othersecret"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/guid/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["guid"], 36)

	rec = do(t, h, http.MethodGet, "/api/guid/bulk?count=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["guids"], 3)

	rec = do(t, h, http.MethodGet, "/api/ulid/bulk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["ulids"], defaultBulk)

	rec = do(t, h, http.MethodGet, "/api/guid/bulk?count=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/ulid", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode(t, rec)["ulid"].(string)
	assert.Len(t, id, 26)

	rec = do(t, h, http.MethodGet, "/api/ulid/timestamp?ULID_str="+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["Timestamp"])

	rec = do(t, h, http.MethodGet, "/api/ulid/timestamp?ULID_str=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordRoute(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/password/generate?length=20&include_special=false&include_uppercase=false", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	pw := decode(t, rec)["password"].(string)
	assert.Len(t, pw, 20)
	for _, c := range pw {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z'), "unexpected %q", c)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", http.StatusUnprocessableEntity},
		{"?length=abc", http.StatusUnprocessableEntity},
		{"?length=4", http.StatusBadRequest},
		{"?length=12&include_numbers=maybe", http.StatusUnprocessableEntity},
		{"?length=12&include_numbers=false&include_special=false&include_uppercase=false&include_lowercase=false", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := do(t, h, http.MethodGet, "/api/password/generate"+tt.query, nil)
		assert.Equal(t, tt.want, rec.Code, tt.query)
	}
}

func TestTextRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/slug/generate", map[string]string{"text": "Héllo World!", "separator": "_", "case": "uppercase"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"slug":"HELLO_WORLD"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/lorem-ipsum/generate", map[string]any{"type": "word", "count": 5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Lorem ipsum dolor sit amet", strings.TrimSuffix(decode(t, rec)["content"].(string), "."))

	rec = do(t, h, http.MethodPost, "/api/lorem-ipsum/generate", map[string]any{"type": "word", "count": 500})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimeRoutes(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/unix-utc/unix-to-utc", map[string]any{"timestamp": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"datetime_utc":"1970-01-01T00:00:00+00:00","timestamp":0}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/unix-utc/utc-to-unix", map[string]string{"datetime_utc": "1970-01-02 00:00:00"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 86400.0, decode(t, rec)["timestamp"])

	rec = do(t, h, http.MethodPost, "/api/unix-utc/unix-to-utc", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/timezone-converter/", map[string]string{
		"datetime_str":  "2024-01-15 12:00:00",
		"from_timezone": "UTC",
		"to_timezone":   "Asia/Tokyo",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "2024-01-15 21:00:00 JST", decode(t, rec)["result"])

	rec = do(t, h, http.MethodGet, "/api/timezone-converter/all-timezones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec)["timezones"], "Europe/London")
}
