// Package testing provides test utilities for responsez pipelines.
package testing

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	responsez "github.com/zoobzio/responsez"
)

// CollectResultsWithTimeout collects all results from a channel with a timeout.
func CollectResultsWithTimeout[T any](t *testing.T, ch <-chan responsez.Result[T], timeout time.Duration) []responsez.Result[T] {
	t.Helper()

	var results []responsez.Result[T]
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case result, ok := <-ch:
			if !ok {
				return results
			}
			results = append(results, result)
		case <-timer.C:
			return results
		}
	}
}

// CollectValues collects all successful values from a Result channel with a timeout.
// Returns only the values, ignoring errors.
func CollectValues[T any](t *testing.T, ch <-chan responsez.Result[T], timeout time.Duration) []T {
	t.Helper()

	results := CollectResultsWithTimeout(t, ch, timeout)
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			values = append(values, r.Value())
		}
	}
	return values
}

// CollectErrors collects all errors from a Result channel with a timeout.
// Returns only the errors, ignoring successes.
func CollectErrors[T any](t *testing.T, ch <-chan responsez.Result[T], timeout time.Duration) []error {
	t.Helper()

	results := CollectResultsWithTimeout(t, ch, timeout)
	errs := make([]error, 0)
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.Error())
		}
	}
	return errs
}

// SendResponses sends responses to a buffered channel as successful Results.
// Closes the channel after all responses are sent.
func SendResponses(t *testing.T, responses ...responsez.Response) <-chan responsez.Result[responsez.Response] {
	t.Helper()

	ch := make(chan responsez.Result[responsez.Response], len(responses))
	for _, r := range responses {
		ch <- responsez.NewSuccess(r)
	}
	close(ch)
	return ch
}

// NewResponse builds a Response with the given status code and body.
func NewResponse(status int, body string) responsez.Response {
	return responsez.Response{StatusCode: status, Data: []byte(body)}
}

// PNG returns a PNG encoding of a solid w x h image.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// AssertResultCount verifies the expected number of results were received.
func AssertResultCount[T any](t *testing.T, results []responsez.Result[T], expected int) {
	t.Helper()

	if len(results) != expected {
		t.Errorf("expected %d results, got %d", expected, len(results))
	}
}

// AssertAllSuccess verifies all results are successful.
func AssertAllSuccess[T any](t *testing.T, results []responsez.Result[T]) {
	t.Helper()

	for i, r := range results {
		if r.IsError() {
			t.Errorf("result %d: expected success, got error: %v", i, r.Error())
		}
	}
}

// AssertAllErrors verifies all results are errors.
func AssertAllErrors[T any](t *testing.T, results []responsez.Result[T]) {
	t.Helper()

	for i, r := range results {
		if r.IsSuccess() {
			t.Errorf("result %d: expected error, got success with value: %v", i, r.Value())
		}
	}
}
