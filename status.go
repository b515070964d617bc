package responsez

import "fmt"

// StatusRange is a closed interval of HTTP status codes, [Min, Max].
type StatusRange struct {
	Min int
	Max int
}

// Predefined ranges used by the convenience filters.
var (
	// SuccessfulStatusCodes accepts 2xx responses.
	SuccessfulStatusCodes = StatusRange{Min: 200, Max: 299}

	// SuccessfulStatusAndRedirectCodes accepts 2xx and 3xx responses.
	SuccessfulStatusAndRedirectCodes = StatusRange{Min: 200, Max: 399}
)

// StatusCode returns the range containing only code.
func StatusCode(code int) StatusRange {
	return StatusRange{Min: code, Max: code}
}

// Valid reports whether Min <= Max.
func (r StatusRange) Valid() bool {
	return r.Min <= r.Max
}

// Contains reports whether code lies within the range, bounds included.
func (r StatusRange) Contains(code int) bool {
	return r.Min <= code && code <= r.Max
}

func (r StatusRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
