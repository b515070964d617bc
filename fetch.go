package responsez

import (
	"context"
	"net/http"
)

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher turns a stream of requests into a stream of fully read responses.
// It is the usual source stage for the operators in this package.
// Requests run one at a time, in order. Each keeps its own context and is
// also canceled with the stream's context. A nil request yields an
// ErrNilRequest error result.
// Transport failures become error results; the Fetcher never retries and
// never inspects status codes.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Fetcher struct {
	name    string
	doer    HTTPDoer
	clock   Clock
	maxBody int64
}

// NewFetcher creates a Fetcher backed by doer.
//
// Example:
//
//	fetcher := responsez.NewFetcher(&http.Client{Timeout: 10 * time.Second}).
//		WithMaxBodySize(1 << 20)
//
//	responses := fetcher.Process(ctx, requests)
//	ok := responsez.FilterSuccessfulStatusCodes().Process(ctx, responses)
func NewFetcher(doer HTTPDoer) *Fetcher {
	return &Fetcher{
		name:  "fetcher",
		doer:  doer,
		clock: RealClock,
	}
}

// WithName sets a custom name for this processor.
func (f *Fetcher) WithName(name string) *Fetcher {
	f.name = name
	return f
}

// WithClock sets the clock used to timestamp errors.
func (f *Fetcher) WithClock(clock Clock) *Fetcher {
	f.clock = clock
	return f
}

// WithMaxBodySize limits how many body bytes are read per response.
// Larger bodies fail with ErrBodyTooLarge. Zero disables the limit.
func (f *Fetcher) WithMaxBodySize(n int64) *Fetcher {
	f.maxBody = n
	return f
}

// Process executes each request and emits its response. Every result
// carries MetadataURL and MetadataMethod; successful results also carry
// MetadataStatusCode.
func (f *Fetcher) Process(ctx context.Context, in <-chan *http.Request) <-chan Result[Response] {
	out := make(chan Result[Response])

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case req, ok := <-in:
				if !ok {
					return
				}

				select {
				case out <- f.fetch(ctx, req):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// fetch runs req under its own context, additionally canceled when the
// stream's ctx is done, so per-request deadlines still apply.
func (f *Fetcher) fetch(ctx context.Context, req *http.Request) Result[Response] {
	if req == nil {
		return Result[Response]{err: newStreamError(Response{}, ErrNilRequest, f.name, f.clock)}
	}

	reqCtx, cancel := context.WithCancel(req.Context())
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var result Result[Response]

	resp, err := f.doer.Do(req.WithContext(reqCtx))
	if err == nil {
		var r Response
		r, err = readResponse(resp, f.maxBody)
		if err == nil {
			result = NewSuccess(r).WithMetadata(MetadataStatusCode, r.StatusCode)
		}
	}
	if err != nil {
		result = Result[Response]{err: newStreamError(Response{Request: req}, err, f.name, f.clock)}
	}

	return result.
		WithMetadata(MetadataURL, req.URL.String()).
		WithMetadata(MetadataMethod, req.Method)
}

// Name returns the processor name for debugging and monitoring.
func (f *Fetcher) Name() string {
	return f.name
}
