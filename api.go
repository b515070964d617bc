// Package responsez provides type-safe stream operators for post-processing
// HTTP responses flowing through Go channels.
//
// Responses travel as Result[Response] values. Each operator consumes one
// upstream result and emits exactly one downstream result: either the
// validated or decoded value, or a typed error describing why the response
// was rejected.
//
// Basic usage:
//
//	ctx := context.Background()
//	requests := make(chan *http.Request)
//
//	fetcher := responsez.NewFetcher(http.DefaultClient)
//	ok := responsez.FilterSuccessfulStatusCodes()
//	decode := responsez.MapJSON()
//
//	responses := fetcher.Process(ctx, requests)
//	filtered := ok.Process(ctx, responses)
//	values := decode.Process(ctx, filtered)
//
//	for result := range values {
//		if result.IsError() {
//			var status *responsez.InvalidStatusCodeError
//			if errors.As(result.Error(), &status) {
//				log.Printf("unexpected status %d", status.StatusCode)
//			}
//			continue
//		}
//		fmt.Printf("Got document: %v\n", result.Value())
//	}
//
// The package provides operators for:
//   - Status code filtering (ranges, single codes, success and redirect)
//   - Image decoding (PNG, JPEG, GIF, BMP, TIFF, WebP)
//   - JSON decoding, untyped or into a caller-supplied type
//   - Text decoding, UTF-8 or any golang.org/x/text encoding
package responsez

import (
	"context"
)

// Processor is the core interface for stream processing components.
// It transforms an input channel of type In to an output channel of type Out.
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Be safe for concurrent use across independent streams
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}
