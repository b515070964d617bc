package responsez_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"

	"github.com/zoobzio/responsez"
	rztesting "github.com/zoobzio/responsez/testing"
)

func TestMapJSON_Stream(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t, rztesting.NewResponse(200, "[1,2,3]"))

	values := rztesting.CollectValues(t, responsez.MapJSON().Process(ctx, in), time.Second)
	if len(values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(values))
	}
	if diff := cmp.Diff([]any{1.0, 2.0, 3.0}, values[0]); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapJSON_StreamMalformed(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t, rztesting.NewResponse(200, "{oops"))

	errs := rztesting.CollectErrors(t, responsez.MapJSON().Process(ctx, in), time.Second)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}

	var decodeErr *responsez.JSONDecodeError
	if !errors.As(errs[0], &decodeErr) {
		t.Fatalf("expected JSONDecodeError, got %v", errs[0])
	}
}

func TestMapJSONInto_Stream(t *testing.T) {
	type item struct {
		ID    int      `json:"id"`
		Tags  []string `json:"tags"`
		Price float64  `json:"price"`
	}

	ctx := context.Background()
	in := rztesting.SendResponses(t,
		rztesting.NewResponse(200, `{"id":1,"tags":["a"],"price":9.5}`),
		rztesting.NewResponse(200, `{"id":2,"tags":[],"price":0}`),
	)

	values := rztesting.CollectValues(t, responsez.MapJSONInto[item]().Process(ctx, in), time.Second)
	want := []item{
		{ID: 1, Tags: []string{"a"}, Price: 9.5},
		{ID: 2, Tags: []string{}, Price: 0},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapString_Stream(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t,
		rztesting.NewResponse(200, "hello"),
		rztesting.NewResponse(200, "wörld"),
	)

	values := rztesting.CollectValues(t, responsez.MapString().Process(ctx, in), time.Second)
	if diff := cmp.Diff([]string{"hello", "wörld"}, values); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapString_StreamInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t, responsez.Response{StatusCode: 200, Data: []byte{0xFF, 0xFE}})

	results := rztesting.CollectResultsWithTimeout(t, responsez.MapString().Process(ctx, in), time.Second)
	rztesting.AssertResultCount(t, results, 1)
	rztesting.AssertAllErrors(t, results)

	if len(results) == 1 && !errors.Is(results[0].Error(), responsez.ErrStringDecode) {
		t.Errorf("expected StringDecodeError, got %v", results[0].Error())
	}
}

func TestMapStringEncoding_Stream(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t, responsez.Response{StatusCode: 200, Data: []byte{0x80, ' ', '5'}})

	values := rztesting.CollectValues(t, responsez.MapStringEncoding(charmap.Windows1252).Process(ctx, in), time.Second)
	if diff := cmp.Diff([]string{"€ 5"}, values); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMapImage_Stream(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t,
		responsez.Response{StatusCode: 200, Data: rztesting.PNG(t, 1, 1)},
		responsez.Response{StatusCode: 200, Data: rztesting.PNG(t, 16, 9)},
		rztesting.NewResponse(200, "GIF89a but not really"),
	)

	results := rztesting.CollectResultsWithTimeout(t, responsez.MapImage().Process(ctx, in), time.Second)
	rztesting.AssertResultCount(t, results, 3)
	if len(results) != 3 {
		return
	}

	for i, size := range [][2]int{{1, 1}, {16, 9}} {
		if results[i].IsError() {
			t.Fatalf("result %d: unexpected error %v", i, results[i].Error())
		}
		b := results[i].Value().Bounds()
		if b.Dx() != size[0] || b.Dy() != size[1] {
			t.Errorf("result %d: expected %dx%d, got %dx%d", i, size[0], size[1], b.Dx(), b.Dy())
		}
	}

	var decodeErr *responsez.ImageDecodeError
	if !errors.As(results[2].Error(), &decodeErr) {
		t.Fatalf("expected ImageDecodeError, got %v", results[2].Error())
	}
	if decodeErr.Length != len("GIF89a but not really") {
		t.Errorf("expected body length in error, got %d", decodeErr.Length)
	}
}

func TestPipeline_FilterThenDecode(t *testing.T) {
	ctx := context.Background()
	in := rztesting.SendResponses(t,
		rztesting.NewResponse(200, `{"ok":true}`),
		rztesting.NewResponse(500, `{"ok":false}`),
		rztesting.NewResponse(200, `{"ok":true}`),
	)

	filtered := responsez.FilterSuccessfulStatusCodes().Process(ctx, in)
	decoded := responsez.MapJSON().Process(ctx, filtered)

	results := rztesting.CollectResultsWithTimeout(t, decoded, time.Second)
	rztesting.AssertResultCount(t, results, 2)
	if len(results) != 2 {
		return
	}

	if diff := cmp.Diff(map[string]any{"ok": true}, results[0].Value()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(results[1].Error(), responsez.ErrInvalidStatusCode) {
		t.Errorf("expected status error to reach the end of the pipeline, got %v", results[1].Error())
	}
}
