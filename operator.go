package responsez

import (
	"context"
)

// Operator applies a fallible transformation to every Response in a stream.
// It is the single primitive behind all filters and decoders in this package:
// each input Result yields exactly one output Result, in input order.
//
// By default an Operator is fail-fast: once it has emitted an error it stops
// emitting, drains the rest of its input so upstream stages can finish, and
// closes its output. ContinueOnError keeps the stream running instead, with
// errors flowing inline next to successful values.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Operator[Out any] struct {
	name            string
	fn              func(Response) (Out, error)
	clock           Clock
	continueOnError bool
}

// NewOperator creates an operator from a transformation function.
// Errors returned by fn are wrapped in a StreamError attributed to the
// operator; use errors.As on the result error to recover them.
//
// Example:
//
//	// Extract a header, failing when it is missing
//	etag := responsez.NewOperator("etag", func(r responsez.Response) (string, error) {
//		v := r.Header.Get("ETag")
//		if v == "" {
//			return "", errors.New("missing ETag")
//		}
//		return v, nil
//	})
//
//	tags := etag.Process(ctx, responses)
//
// Parameters:
//   - name: Descriptive name for debugging and error reporting
//   - fn: Pure transformation from Response to the output type
//
// Returns a new fail-fast Operator.
func NewOperator[Out any](name string, fn func(Response) (Out, error)) *Operator[Out] {
	return &Operator[Out]{
		name:  name,
		fn:    fn,
		clock: RealClock,
	}
}

// WithName sets a custom name for this processor.
func (o *Operator[Out]) WithName(name string) *Operator[Out] {
	o.name = name
	return o
}

// WithClock sets the clock used to timestamp errors.
func (o *Operator[Out]) WithClock(clock Clock) *Operator[Out] {
	o.clock = clock
	return o
}

// ContinueOnError keeps processing after an error instead of terminating
// the stream.
func (o *Operator[Out]) ContinueOnError() *Operator[Out] {
	o.continueOnError = true
	return o
}

// Apply runs the transformation on a single Result outside of a stream.
// Upstream errors are re-typed and passed through unchanged.
func (o *Operator[Out]) Apply(item Result[Response]) Result[Out] {
	if item.IsError() {
		return passError[Response, Out](item, o.name)
	}

	resp := item.Value()
	value, err := o.fn(resp)
	if err != nil {
		var failed Out
		// Filters keep the rejected response for diagnostics.
		if r, ok := any(&failed).(*Response); ok {
			*r = resp
		}
		return carryError(item, newStreamError(failed, err, o.name, o.clock)).
			WithMetadata(MetadataProcessor, o.name)
	}
	return carry(item, value)
}

// Process transforms each Response in the input stream.
// The output channel is closed when the input is closed, when the context
// is canceled, or after the first error unless ContinueOnError is set.
func (o *Operator[Out]) Process(ctx context.Context, in <-chan Result[Response]) <-chan Result[Out] {
	out := make(chan Result[Out])

	go func() {
		defer close(out)

		for {
			var item Result[Response]
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				item = r
			}

			result := o.Apply(item)

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}

			if result.IsError() && !o.continueOnError {
				go drain(ctx, in)
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (o *Operator[Out]) Name() string {
	return o.name
}

// drain discards the rest of in until it is closed or ctx is done, so its
// producer is never blocked on a stage that has stopped emitting.
func drain[T any](ctx context.Context, in <-chan T) {
	for {
		select {
		case _, ok := <-in:
			if !ok {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
