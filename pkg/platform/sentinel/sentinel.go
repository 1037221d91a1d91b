package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and caches return these
// (optionally wrapped) so the badge service can translate them into domain
// errors with the right rejection code.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: badge or registry record does not exist in the store
// - ErrAlreadyUsed: account already holds a badge (unique owner constraint)
// - ErrConflict: concurrent write lost to a competing operation
// - ErrUnavailable: backing store temporarily unreachable
//
// For precondition failures (score floors, authorization), use
// pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
