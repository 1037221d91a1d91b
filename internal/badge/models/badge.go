package models

import (
	"time"

	id "merit/pkg/domain"
	dErrors "merit/pkg/domain-errors"
)

// MinimumScore is the reputation floor enforced on self-service mints and on
// every score correction. The administrator mint path deliberately skips it
// so manual attestations can issue below-floor badges; those mints are
// flagged in the issuance event instead of rejected.
const MinimumScore uint = 35

// Badge is the soulbound credential issued by the registry.
//
// Invariants:
//   - ID is assigned once at mint, starts at 1, and ids are contiguous with
//     no gaps or reuse across the registry's lifetime
//   - Owner is set exactly once at mint and never reassigned; there is no
//     transfer, approval, or burn path out of ownership
//   - Each account owns at most one badge
//   - Score is >= MinimumScore on the self-service path and after every
//     correction; only an administrator correction mutates it post-mint
//   - IssuedAt is immutable after construction
type Badge struct {
	ID       id.BadgeID `json:"id"`
	Owner    id.Account `json:"owner"`
	Score    uint       `json:"score"`
	IssuedAt time.Time  `json:"issued_at"`
}

// ValidateSelfMintScore enforces the reputation floor on the self-service
// mint path.
func ValidateSelfMintScore(score uint) error {
	if score < MinimumScore {
		return dErrors.New(dErrors.CodeInsufficientScore, "reputation score below minimum")
	}
	return nil
}

// ValidateCorrectionScore enforces the reputation floor on score
// corrections. Corrections can never push an issued badge below the floor,
// even for badges the administrator minted below it.
func ValidateCorrectionScore(score uint) error {
	if score < MinimumScore {
		return dErrors.New(dErrors.CodeScoreBelowMinimum, "corrected score below minimum")
	}
	return nil
}

// BelowFloor reports whether the badge carries a score under the
// self-service floor. True only for administrator attestation mints.
func (b *Badge) BelowFloor() bool {
	return b.Score < MinimumScore
}
