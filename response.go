package responsez

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is a fully read HTTP response.
// Operators treat it as immutable: Data is never modified in place.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Data is the raw response body.
	Data []byte

	// Header holds the response headers, if known.
	Header http.Header

	// Request is the request that produced this response, if known.
	Request *http.Request
}

// NewResponse reads and closes the body of resp.
func NewResponse(resp *http.Response) (Response, error) {
	return readResponse(resp, 0)
}

// readResponse reads at most maxBody bytes of resp's body; 0 means no limit.
func readResponse(resp *http.Response, maxBody int64) (Response, error) {
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if maxBody > 0 {
		body = io.LimitReader(resp.Body, maxBody+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}
	if maxBody > 0 && int64(len(data)) > maxBody {
		return Response{}, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxBody)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Data:       data,
		Header:     resp.Header,
		Request:    resp.Request,
	}, nil
}

func (r Response) String() string {
	return fmt.Sprintf("Status Code: %d, Data Length: %d", r.StatusCode, len(r.Data))
}

// FilterStatusCodes returns r unchanged if its status code lies in rng,
// otherwise an *InvalidStatusCodeError.
func (r Response) FilterStatusCodes(rng StatusRange) (Response, error) {
	if !rng.Valid() {
		return r, &InvalidStatusCodeError{StatusCode: r.StatusCode, Range: rng, Err: ErrInvalidStatusRange}
	}
	if !rng.Contains(r.StatusCode) {
		return r, &InvalidStatusCodeError{StatusCode: r.StatusCode, Range: rng}
	}
	return r, nil
}

// FilterStatusCode accepts only the given status code.
func (r Response) FilterStatusCode(code int) (Response, error) {
	return r.FilterStatusCodes(StatusCode(code))
}

// FilterSuccessfulStatusCodes accepts 200-299.
func (r Response) FilterSuccessfulStatusCodes() (Response, error) {
	return r.FilterStatusCodes(SuccessfulStatusCodes)
}

// FilterSuccessfulStatusAndRedirectCodes accepts 200-399.
func (r Response) FilterSuccessfulStatusAndRedirectCodes() (Response, error) {
	return r.FilterStatusCodes(SuccessfulStatusAndRedirectCodes)
}

// MapImage decodes the body as PNG, JPEG, GIF, BMP, TIFF or WebP.
func (r Response) MapImage() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(r.Data))
	if err != nil {
		return nil, &ImageDecodeError{Length: len(r.Data), Err: err}
	}
	return img, nil
}

// MapJSON parses the body as a single JSON value. Objects decode to
// map[string]any, arrays to []any and numbers to float64.
func (r Response) MapJSON() (any, error) {
	return DecodeJSON[any](r)
}

// DecodeJSON parses the body of r into a value of type T.
// The body must be UTF-8 JSON text.
func DecodeJSON[T any](r Response) (T, error) {
	var v T
	if len(bytes.TrimSpace(r.Data)) == 0 {
		return v, &JSONDecodeError{Length: len(r.Data), Err: io.ErrUnexpectedEOF}
	}
	if offset := invalidUTF8Offset(r.Data); offset >= 0 {
		return v, &JSONDecodeError{Length: len(r.Data), Err: fmt.Errorf("invalid UTF-8 at offset %d", offset)}
	}
	if err := json.Unmarshal(r.Data, &v); err != nil {
		var zero T
		return zero, &JSONDecodeError{Length: len(r.Data), Err: err}
	}
	return v, nil
}

// MapString returns the body as a string if it is valid UTF-8.
func (r Response) MapString() (string, error) {
	if offset := invalidUTF8Offset(r.Data); offset >= 0 {
		return "", &StringDecodeError{Encoding: "utf-8", Length: len(r.Data), Offset: offset}
	}
	return string(r.Data), nil
}

// MapStringEncoding decodes the body from enc into a UTF-8 string.
// unicode.UTF8 is validated strictly, as in MapString; other encodings
// follow the golang.org/x/text decoder for enc.
func (r Response) MapStringEncoding(enc encoding.Encoding) (string, error) {
	if enc == unicode.UTF8 {
		return r.MapString()
	}

	decoded, err := enc.NewDecoder().Bytes(r.Data)
	if err != nil {
		return "", &StringDecodeError{Encoding: encodingName(enc), Length: len(r.Data), Offset: -1, Err: err}
	}
	return string(decoded), nil
}

// invalidUTF8Offset returns the index of the first byte that does not
// start a valid UTF-8 sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		rn, size := utf8.DecodeRune(data[i:])
		if rn == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func encodingName(enc encoding.Encoding) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	if s, ok := enc.(fmt.Stringer); ok {
		return s.String()
	}
	return "unknown"
}
