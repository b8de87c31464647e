package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidKind        = errors.New("invalid_kind")
	ErrMissingSession     = errors.New("missing_session_id")
	ErrStoreNotConfigured = errors.New("store_not_configured")
)

// RecordRequest carries one event submission into the service.
type RecordRequest struct {
	Kind      string
	SessionID string
	Payload   map[string]any

	// ClientIP is the derived caller address; it is hashed before storage
	// and never persisted raw.
	ClientIP  string
	UserAgent string
	Referrer  string
}

// Service ingests usage events and computes the dashboard aggregation.
type Service interface {
	// Record writes one event. When no analytics store is configured it
	// returns (nil, nil) so callers can report success without storing.
	Record(ctx context.Context, req RecordRequest) (*UsageEvent, error)

	// Stats computes the read-only dashboard aggregation on demand.
	Stats(ctx context.Context) (*Stats, error)
}
