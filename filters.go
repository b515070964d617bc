package responsez

// FilterStatusCodes creates an operator that passes responses whose status
// code lies in rng unchanged, and fails with *InvalidStatusCodeError for
// all others.
//
// When to use:
//   - Rejecting error responses before decoding their bodies
//   - Accepting an API's documented status codes only
//   - Guarding pipelines against unexpected redirects
//
// Example:
//
//	// Only accept 2xx and 304 Not Modified
//	ok := responsez.FilterStatusCodes(responsez.StatusRange{Min: 200, Max: 304})
//
//	checked := ok.Process(ctx, responses)
//	for result := range checked {
//		var status *responsez.InvalidStatusCodeError
//		if errors.As(result.Error(), &status) {
//			log.Printf("got %d, want %s", status.StatusCode, status.Range)
//		}
//	}
//
// An inverted range (Min > Max) accepts nothing; every response fails with
// an error that also matches ErrInvalidStatusRange.
func FilterStatusCodes(rng StatusRange) *Operator[Response] {
	return NewOperator("filter-status-codes", func(r Response) (Response, error) {
		return r.FilterStatusCodes(rng)
	})
}

// FilterStatusCode creates an operator that accepts exactly one status code.
func FilterStatusCode(code int) *Operator[Response] {
	return FilterStatusCodes(StatusCode(code)).WithName("filter-status-code")
}

// FilterSuccessfulStatusCodes creates an operator that accepts 200-299.
func FilterSuccessfulStatusCodes() *Operator[Response] {
	return FilterStatusCodes(SuccessfulStatusCodes).WithName("filter-successful-status-codes")
}

// FilterSuccessfulStatusAndRedirectCodes creates an operator that accepts 200-399.
func FilterSuccessfulStatusAndRedirectCodes() *Operator[Response] {
	return FilterStatusCodes(SuccessfulStatusAndRedirectCodes).WithName("filter-successful-status-and-redirect-codes")
}
