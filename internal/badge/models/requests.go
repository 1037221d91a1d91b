package models

import (
	"time"

	id "merit/pkg/domain"
)

// MintRequest is the body for both the self-service and admin mint routes.
// Target is ignored on the self-service path; the authenticated caller is
// always the recipient there.
type MintRequest struct {
	Target string `json:"target,omitempty"`
	Score  uint   `json:"score"`
}

// CorrectScoreRequest is the body for the admin score-correction route.
type CorrectScoreRequest struct {
	Score uint `json:"score"`
}

// SetBaseURIRequest is the body for the admin metadata base URI route.
type SetBaseURIRequest struct {
	BaseURI string `json:"base_uri"`
}

// TransferRequest is the body for the transfer route. Every transfer is
// rejected; the shape exists so rejections carry the caller's intent in logs.
type TransferRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	BadgeID uint64 `json:"badge_id"`
}

// ApproveRequest is the body for the approval routes.
type ApproveRequest struct {
	Spender string `json:"spender,omitempty"`
	BadgeID uint64 `json:"badge_id,omitempty"`

	// Operator fields for blanket operator approval.
	Operator string `json:"operator,omitempty"`
	Approved bool   `json:"approved,omitempty"`
}

// BadgeResponse is the JSON shape for a single badge.
type BadgeResponse struct {
	ID       id.BadgeID `json:"id"`
	Owner    id.Account `json:"owner"`
	Score    uint       `json:"score"`
	IssuedAt time.Time  `json:"issued_at"`
}

// ScoreResponse is the JSON shape for score queries.
type ScoreResponse struct {
	BadgeID id.BadgeID `json:"badge_id"`
	Score   uint       `json:"score"`
}

// HasBadgeResponse is the JSON shape for the ownership query.
type HasBadgeResponse struct {
	Account  id.Account `json:"account"`
	HasBadge bool       `json:"has_badge"`
}

// TotalIssuedResponse is the JSON shape for the issuance counter query.
type TotalIssuedResponse struct {
	TotalIssued uint64 `json:"total_issued"`
}

// BadgeURIResponse is the JSON shape for the metadata URI query.
type BadgeURIResponse struct {
	BadgeID id.BadgeID `json:"badge_id"`
	URI     string     `json:"uri"`
}

// ToResponse converts a badge to its JSON response shape.
func (b *Badge) ToResponse() BadgeResponse {
	return BadgeResponse{
		ID:       b.ID,
		Owner:    b.Owner,
		Score:    b.Score,
		IssuedAt: b.IssuedAt,
	}
}
