// Package service implements the soulbound badge registry rules: one badge
// per account, mint-once, non-transferable, score floor on the self-service
// path.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"merit/internal/badge/cache"
	"merit/internal/badge/events"
	badgemetrics "merit/internal/badge/metrics"
	"merit/internal/badge/models"
	"merit/internal/badge/store"
	id "merit/pkg/domain"
	dErrors "merit/pkg/domain-errors"
	"merit/pkg/platform/sentinel"
	"merit/pkg/requestcontext"
)

// Service orchestrates registry operations over a Store. Every mutating
// operation is all-or-nothing: the store owns the critical section, the
// service owns precondition ordering and error translation. Events are
// emitted only after the store commits and never undo a commit.
type Service struct {
	store   store.Store
	events  events.Publisher
	cache   *cache.ScoreCache
	metrics *badgemetrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type serviceConfig struct {
	events  events.Publisher
	cache   *cache.ScoreCache
	metrics *badgemetrics.Metrics
	logger  *slog.Logger
}

// Option configures optional service collaborators.
type Option func(*serviceConfig)

func WithEvents(p events.Publisher) Option {
	return func(c *serviceConfig) { c.events = p }
}

func WithCache(sc *cache.ScoreCache) Option {
	return func(c *serviceConfig) { c.cache = sc }
}

func WithMetrics(m *badgemetrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = l }
}

func New(st store.Store, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   st,
		events:  cfg.events,
		cache:   cfg.cache,
		metrics: cfg.metrics,
		logger:  logger,
		tracer:  otel.Tracer("merit/badge"),
	}
}

// MintSelf issues a badge to the authenticated caller. The caller supplies
// its own externally computed score; the registry only enforces the floor.
// Not idempotent: a second call for the same caller fails with AlreadyMinted.
func (s *Service) MintSelf(ctx context.Context, caller id.Account, score uint) (*models.Badge, error) {
	ctx, span := s.tracer.Start(ctx, "badge.MintSelf")
	defer span.End()

	if caller.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "caller account is required")
	}
	if err := models.ValidateSelfMintScore(score); err != nil {
		s.metrics.IncrementMintOutcome(events.PathSelf, string(dErrors.CodeOf(err)))
		return nil, err
	}
	return s.mint(ctx, span, caller, score, events.PathSelf)
}

// MintFor issues a badge on behalf of a target account. Administrator-only.
// The score floor is intentionally not enforced here: a manual attestation
// may issue below the self-service bar. Such mints are flagged on the
// issuance event and counted, not rejected.
func (s *Service) MintFor(ctx context.Context, target id.Account, score uint) (*models.Badge, error) {
	ctx, span := s.tracer.Start(ctx, "badge.MintFor")
	defer span.End()

	if err := s.requireAdmin(ctx); err != nil {
		s.metrics.IncrementMintOutcome(events.PathAdmin, string(dErrors.CodeNotAuthorized))
		return nil, err
	}
	if target.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "target account is required")
	}
	return s.mint(ctx, span, target, score, events.PathAdmin)
}

// mint is the shared issuance path. Precondition order: recorded-as-minted
// first (AlreadyMinted), then the store's ownership constraint
// (AlreadyOwnsBadge) for races the first check missed.
func (s *Service) mint(ctx context.Context, span trace.Span, recipient id.Account, score uint, path string) (*models.Badge, error) {
	start := time.Now()

	minted, err := s.store.Has(ctx, recipient)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check mint state")
	}
	if minted {
		s.metrics.IncrementMintOutcome(path, string(dErrors.CodeAlreadyMinted))
		return nil, dErrors.New(dErrors.CodeAlreadyMinted, "account already minted a badge")
	}

	badge, err := s.store.Mint(ctx, recipient, score, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.metrics.IncrementMintOutcome(path, string(dErrors.CodeAlreadyOwnsBadge))
			return nil, dErrors.New(dErrors.CodeAlreadyOwnsBadge, "account already holds a badge")
		}
		s.metrics.IncrementMintOutcome(path, string(dErrors.CodeInternal))
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mint badge")
	}

	span.SetAttributes(
		attribute.Int64("badge.id", int64(badge.ID)),
		attribute.String("badge.path", path),
	)
	s.metrics.IncrementMintOutcome(path, "ok")
	if badge.BelowFloor() {
		s.metrics.IncrementBelowFloorMint()
	}
	s.metrics.ObserveOperationLatency("mint", time.Since(start))

	s.publish(ctx, events.NewBadgeIssued(recipient, badge.ID, badge.Score, path, badge.BelowFloor(), badge.IssuedAt))
	s.logger.InfoContext(ctx, "badge issued",
		"request_id", requestcontext.RequestID(ctx),
		"badge_id", badge.ID,
		"recipient", recipient,
		"path", path,
		"below_floor", badge.BelowFloor(),
		"device", requestcontext.DevicePlatform(ctx),
	)
	return badge, nil
}

// CorrectScore overwrites an issued badge's score. Administrator-only, floor
// bound, and audited via a correction event.
func (s *Service) CorrectScore(ctx context.Context, badgeID id.BadgeID, newScore uint) error {
	ctx, span := s.tracer.Start(ctx, "badge.CorrectScore")
	defer span.End()

	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := models.ValidateCorrectionScore(newScore); err != nil {
		return err
	}

	badge, err := s.store.FindByID(ctx, badgeID)
	if err != nil {
		return s.wrapBadgeErr(err)
	}
	if err := s.store.UpdateScore(ctx, badgeID, newScore); err != nil {
		return s.wrapBadgeErr(err)
	}
	if err := s.cache.Invalidate(ctx, badgeID); err != nil {
		s.logger.WarnContext(ctx, "score cache invalidation failed",
			"badge_id", badgeID, "error", err)
	}

	span.SetAttributes(attribute.Int64("badge.id", int64(badgeID)))
	s.publish(ctx, events.NewScoreCorrected(badge.Owner, badgeID, badge.Score, newScore, requestcontext.Now(ctx)))
	s.logger.InfoContext(ctx, "badge score corrected",
		"request_id", requestcontext.RequestID(ctx),
		"badge_id", badgeID,
		"old_score", badge.Score,
		"new_score", newScore,
	)
	return nil
}

// ScoreByBadge returns the score of an issued badge. Read-through cached.
func (s *Service) ScoreByBadge(ctx context.Context, badgeID id.BadgeID) (uint, error) {
	if score, hit, err := s.cache.Get(ctx, badgeID); err != nil {
		s.logger.WarnContext(ctx, "score cache read failed", "badge_id", badgeID, "error", err)
	} else if hit {
		return score, nil
	}

	badge, err := s.store.FindByID(ctx, badgeID)
	if err != nil {
		return 0, s.wrapBadgeErr(err)
	}
	if err := s.cache.Set(ctx, badgeID, badge.Score); err != nil {
		s.logger.WarnContext(ctx, "score cache write failed", "badge_id", badgeID, "error", err)
	}
	return badge.Score, nil
}

// ScoreByAccount returns the score of the account's badge.
func (s *Service) ScoreByAccount(ctx context.Context, account id.Account) (uint, error) {
	badge, err := s.store.FindByOwner(ctx, account)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return 0, dErrors.New(dErrors.CodeNoBadge, "account has no badge")
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up badge")
	}
	return badge.Score, nil
}

// BadgeByAccount returns the full badge held by an account.
func (s *Service) BadgeByAccount(ctx context.Context, account id.Account) (*models.Badge, error) {
	badge, err := s.store.FindByOwner(ctx, account)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNoBadge, "account has no badge")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up badge")
	}
	return badge, nil
}

// HasBadge reports badge ownership. Pure query, always succeeds.
func (s *Service) HasBadge(ctx context.Context, account id.Account) (bool, error) {
	has, err := s.store.Has(ctx, account)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check ownership")
	}
	return has, nil
}

// TotalIssued returns the issuance counter. Issued ids are exactly
// 1..TotalIssued with no gaps.
func (s *Service) TotalIssued(ctx context.Context) (uint64, error) {
	total, err := s.store.Total(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read issuance counter")
	}
	return total, nil
}

// SetMetadataBaseURI overwrites the metadata base URI. Administrator-only;
// the URI format is intentionally not validated.
func (s *Service) SetMetadataBaseURI(ctx context.Context, uri string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.store.SetBaseURI(ctx, uri); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set base URI")
	}
	return nil
}

// BadgeURI derives the metadata location for an issued badge by appending
// the id to the base URI. Empty when no base URI is configured.
func (s *Service) BadgeURI(ctx context.Context, badgeID id.BadgeID) (string, error) {
	if _, err := s.store.FindByID(ctx, badgeID); err != nil {
		return "", s.wrapBadgeErr(err)
	}
	base, err := s.store.BaseURI(ctx)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read base URI")
	}
	if base == "" {
		return "", nil
	}
	return base + badgeID.String(), nil
}

// Transfer rejects every attempt to move a badge between accounts. Badges
// are bound to their owner from mint onward; minting itself never routes
// through here. The guard reads no state: rejection does not depend on the
// badge, the accounts, or the zero-account sentinel.
func (s *Service) Transfer(ctx context.Context, from, to id.Account, badgeID id.BadgeID) error {
	s.metrics.IncrementSoulboundRejection("transfer")
	s.logger.WarnContext(ctx, "transfer attempt rejected",
		"request_id", requestcontext.RequestID(ctx),
		"from", from, "to", to, "badge_id", badgeID,
	)
	return dErrors.New(dErrors.CodeSoulboundViolation, "badges are soulbound and cannot be transferred")
}

// Approve rejects every attempt to grant single-badge transfer permission.
func (s *Service) Approve(ctx context.Context, owner, spender id.Account, badgeID id.BadgeID) error {
	s.metrics.IncrementSoulboundRejection("approve")
	s.logger.WarnContext(ctx, "approval attempt rejected",
		"request_id", requestcontext.RequestID(ctx),
		"owner", owner, "spender", spender, "badge_id", badgeID,
	)
	return dErrors.New(dErrors.CodeSoulboundViolation, "badges are soulbound and cannot be approved for transfer")
}

// SetOperator rejects every attempt to grant blanket operator permission.
func (s *Service) SetOperator(ctx context.Context, owner, operator id.Account, approved bool) error {
	s.metrics.IncrementSoulboundRejection("set_operator")
	s.logger.WarnContext(ctx, "operator approval attempt rejected",
		"request_id", requestcontext.RequestID(ctx),
		"owner", owner, "operator", operator, "approved", approved,
	)
	return dErrors.New(dErrors.CodeSoulboundViolation, "badges are soulbound and cannot have operators")
}

func (s *Service) requireAdmin(ctx context.Context) error {
	if !requestcontext.IsAdmin(ctx) {
		return dErrors.New(dErrors.CodeNotAuthorized, "administrator authority required")
	}
	return nil
}

func (s *Service) wrapBadgeErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeBadgeNotFound, "badge was never issued")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "registry store failure")
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		// Consumers are best-effort; a committed mutation stands regardless.
		s.logger.WarnContext(ctx, "event publish failed",
			"event_id", event.EventID, "type", event.Type, "error", err)
	}
}
