package services

import "fmt"

// Stage names the upstream call that failed.
type Stage string

const (
	StageSearch  Stage = "search"
	StageDetails Stage = "details"
)

// UpstreamKind separates network failures from payloads missing required fields.
type UpstreamKind string

const (
	KindTransport UpstreamKind = "transport"
	KindMalformed UpstreamKind = "malformed"
)

// UpstreamError is returned when the places provider could not be reached or
// answered with something unusable.
type UpstreamError struct {
	Stage Stage
	Kind  UpstreamKind
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFoundError is returned when the provider answered but had nothing to offer.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// ValidationError is returned for malformed caller input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

const (
	REASON_NO_PLACE   = "no place found"
	REASON_NO_DETAILS = "no details found"
)
