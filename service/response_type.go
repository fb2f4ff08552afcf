package service

// ResponseType enumerates the outcomes a service call can report to a handler
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Unauthorized response
	Unauthorized

	// NotFound response
	NotFound

	// PriceMismatch response - the recomputed total disagrees with the
	// client-submitted total beyond tolerance
	PriceMismatch

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"unauthorized",
	"not-found",
	"price-mismatch",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
