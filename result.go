package responsez

import (
	"fmt"
)

// Result represents either a successful value or an error in stream processing.
// Carrying both cases on one channel keeps the one-in, one-out contract of
// every operator: a Result is never both a value and an error.
// Metadata carries request context (URL, method, status) through a pipeline.
type Result[T any] struct {
	value    T
	err      *StreamError[T]
	metadata map[string]interface{} // nil by default for zero overhead
}

// NewSuccess creates a Result containing a successful value.
func NewSuccess[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// NewError creates a Result containing an error.
func NewError[T any](item T, err error, processorName string) Result[T] {
	return Result[T]{err: NewStreamError(item, err, processorName)}
}

// IsError returns true if this Result contains an error.
func (r Result[T]) IsError() bool {
	return r.err != nil
}

// IsSuccess returns true if this Result contains a successful value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the successful value.
// Panics if called on a Result containing an error - always check IsSuccess() first.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("called Value() on Result containing an error")
	}
	return r.value
}

// Error returns the StreamError.
// Returns nil if this Result contains a successful value.
func (r Result[T]) Error() *StreamError[T] {
	return r.err
}

// ValueOr returns the successful value if present, otherwise returns the fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Standard metadata keys.
const (
	MetadataURL        = "url"         // string - request URL
	MetadataMethod     = "method"      // string - request method
	MetadataStatusCode = "status_code" // int - response status code
	MetadataProcessor  = "processor"   // string - processor that rejected the item
)

// WithMetadata returns a new Result with the specified metadata key-value pair.
// The original Result is unchanged. Empty keys are ignored.
func (r Result[T]) WithMetadata(key string, value interface{}) Result[T] {
	if key == "" {
		return r
	}

	newMetadata := make(map[string]interface{}, len(r.metadata)+1)
	for k, v := range r.metadata {
		newMetadata[k] = v
	}
	newMetadata[key] = value

	return Result[T]{
		value:    r.value,
		err:      r.err,
		metadata: newMetadata,
	}
}

// GetMetadata retrieves a metadata value by key.
// Returns the value and true if the key exists, nil and false otherwise.
func (r Result[T]) GetMetadata(key string) (interface{}, bool) {
	if r.metadata == nil {
		return nil, false
	}
	value, exists := r.metadata[key]
	return value, exists
}

// HasMetadata returns true if this Result contains any metadata.
func (r Result[T]) HasMetadata() bool {
	return len(r.metadata) > 0
}

// MetadataKeys returns all metadata keys for this Result.
func (r Result[T]) MetadataKeys() []string {
	keys := make([]string, 0, len(r.metadata))
	for key := range r.metadata {
		keys = append(keys, key)
	}
	return keys
}

// GetStringMetadata retrieves string metadata.
// Returns: (value, found, error)
//   - found=false, error=nil: key not present
//   - found=false, error!=nil: key present but wrong type
//   - found=true, error=nil: successful retrieval.
func (r Result[T]) GetStringMetadata(key string) (value string, found bool, err error) {
	metaValue, exists := r.GetMetadata(key)
	if !exists {
		return "", false, nil
	}
	str, ok := metaValue.(string)
	if !ok {
		return "", false, fmt.Errorf("metadata key %q has type %T, expected string", key, metaValue)
	}
	return str, true, nil
}

// GetIntMetadata retrieves int metadata.
func (r Result[T]) GetIntMetadata(key string) (value int, found bool, err error) {
	metaValue, exists := r.GetMetadata(key)
	if !exists {
		return 0, false, nil
	}
	i, ok := metaValue.(int)
	if !ok {
		return 0, false, fmt.Errorf("metadata key %q has type %T, expected int", key, metaValue)
	}
	return i, true, nil
}

// carry builds a successful Result[Out] that keeps r's metadata.
func carry[In, Out any](r Result[In], value Out) Result[Out] {
	return Result[Out]{value: value, metadata: r.metadata}
}

// carryError builds a failed Result[Out] that keeps r's metadata.
func carryError[In, Out any](r Result[In], err *StreamError[Out]) Result[Out] {
	return Result[Out]{err: err, metadata: r.metadata}
}

// passError re-types an upstream error to Out. The new StreamError is
// attributed to processorName and wraps the original, so errors.As still
// reaches the typed cause.
func passError[In, Out any](r Result[In], processorName string) Result[Out] {
	var zero Out
	return carryError(r, &StreamError[Out]{
		Item:          zero,
		Err:           r.err,
		ProcessorName: processorName,
		Timestamp:     r.err.Timestamp,
	})
}
