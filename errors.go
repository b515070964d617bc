package responsez

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching failure kinds with errors.Is.
var (
	ErrInvalidStatusCode  = errors.New("invalid status code")
	ErrInvalidStatusRange = errors.New("invalid status range")
	ErrImageDecode        = errors.New("image decode failed")
	ErrJSONDecode         = errors.New("json decode failed")
	ErrStringDecode       = errors.New("string decode failed")
	ErrBodyTooLarge       = errors.New("response body too large")
	ErrNilRequest         = errors.New("nil request")
)

// InvalidStatusCodeError reports a response whose status code lies outside
// the accepted range.
type InvalidStatusCodeError struct {
	StatusCode int
	Range      StatusRange

	// Err is ErrInvalidStatusRange when Range itself is inverted.
	Err error
}

func (e *InvalidStatusCodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status code %d not in %s: %v", e.StatusCode, e.Range, e.Err)
	}
	return fmt.Sprintf("status code %d not in %s", e.StatusCode, e.Range)
}

// Is matches ErrInvalidStatusCode.
func (e *InvalidStatusCodeError) Is(target error) bool {
	return target == ErrInvalidStatusCode
}

func (e *InvalidStatusCodeError) Unwrap() error {
	return e.Err
}

// ImageDecodeError reports a body that is not a decodable image.
type ImageDecodeError struct {
	// Length is the size of the rejected body in bytes.
	Length int
	Err    error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("decode image from %d bytes: %v", e.Length, e.Err)
}

// Is matches ErrImageDecode.
func (e *ImageDecodeError) Is(target error) bool {
	return target == ErrImageDecode
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}

// JSONDecodeError reports a body that is not valid JSON, or JSON that does
// not fit the requested type.
type JSONDecodeError struct {
	Length int
	Err    error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("decode json from %d bytes: %v", e.Length, e.Err)
}

// Is matches ErrJSONDecode.
func (e *JSONDecodeError) Is(target error) bool {
	return target == ErrJSONDecode
}

func (e *JSONDecodeError) Unwrap() error {
	return e.Err
}

// StringDecodeError reports a body that is not valid text in Encoding.
type StringDecodeError struct {
	Encoding string
	Length   int

	// Offset is the index of the first invalid byte, or -1 when the
	// decoder does not report one.
	Offset int
	Err    error
}

func (e *StringDecodeError) Error() string {
	msg := fmt.Sprintf("decode %s string from %d bytes", e.Encoding, e.Length)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s: invalid byte at offset %d", msg, e.Offset)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is matches ErrStringDecode.
func (e *StringDecodeError) Is(target error) bool {
	return target == ErrStringDecode
}

func (e *StringDecodeError) Unwrap() error {
	return e.Err
}
