package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"merit/internal/badge/models"
	"merit/internal/platform/metrics"
	"merit/internal/platform/middleware"
	"merit/internal/transport/http/shared"
	id "merit/pkg/domain"
	dErrors "merit/pkg/domain-errors"
	"merit/pkg/requestcontext"
)

// Service defines the registry operations the HTTP layer delegates to.
type Service interface {
	MintSelf(ctx context.Context, caller id.Account, score uint) (*models.Badge, error)
	MintFor(ctx context.Context, target id.Account, score uint) (*models.Badge, error)
	CorrectScore(ctx context.Context, badgeID id.BadgeID, newScore uint) error
	ScoreByBadge(ctx context.Context, badgeID id.BadgeID) (uint, error)
	ScoreByAccount(ctx context.Context, account id.Account) (uint, error)
	BadgeByAccount(ctx context.Context, account id.Account) (*models.Badge, error)
	HasBadge(ctx context.Context, account id.Account) (bool, error)
	TotalIssued(ctx context.Context) (uint64, error)
	SetMetadataBaseURI(ctx context.Context, uri string) error
	BadgeURI(ctx context.Context, badgeID id.BadgeID) (string, error)
	Transfer(ctx context.Context, from, to id.Account, badgeID id.BadgeID) error
	Approve(ctx context.Context, owner, spender id.Account, badgeID id.BadgeID) error
	SetOperator(ctx context.Context, owner, operator id.Account, approved bool) error
}

// Handler handles badge registry endpoints.
type Handler struct {
	logger         *slog.Logger
	registry       Service
	metrics        *metrics.Metrics
	tokenValidator middleware.TokenValidator
	adminTokenHash string
}

// New creates a badge Handler. A nil tokenValidator or empty adminTokenHash
// skips the corresponding middleware so tests can inject identity through
// context directly.
func New(
	registry Service,
	logger *slog.Logger,
	m *metrics.Metrics,
	tokenValidator middleware.TokenValidator,
	adminTokenHash string,
) *Handler {
	return &Handler{
		logger:         logger,
		registry:       registry,
		metrics:        m,
		tokenValidator: tokenValidator,
		adminTokenHash: adminTokenHash,
	}
}

// Register registers the badge routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	base := chi.NewRouter()
	base.Use(middleware.Recovery(h.logger))
	base.Use(middleware.RequestID)
	base.Use(middleware.Logger(h.logger))
	base.Use(middleware.Timeout(30 * time.Second))
	base.Use(middleware.ContentTypeJSON)
	base.Use(middleware.Device)
	if h.metrics != nil {
		base.Use(middleware.Latency(h.metrics))
	}

	// Pure queries need no caller identity.
	base.Get("/badges/total", h.handleTotalIssued)
	base.Get("/badges/{badgeID}/score", h.handleScoreByBadge)
	base.Get("/badges/{badgeID}/uri", h.handleBadgeURI)
	base.Get("/accounts/{account}/badge", h.handleBadgeByAccount)
	base.Get("/accounts/{account}/badge/score", h.handleScoreByAccount)
	base.Get("/accounts/{account}/has-badge", h.handleHasBadge)

	base.Group(func(authed chi.Router) {
		if h.tokenValidator != nil {
			authed.Use(middleware.RequireAuth(h.tokenValidator, h.logger))
		}
		authed.Post("/badges/mint", h.handleMintSelf)
		authed.Post("/badges/transfer", h.handleTransfer)
		authed.Post("/badges/approve", h.handleApprove)
		authed.Post("/badges/operators", h.handleSetOperator)
	})

	base.Group(func(admin chi.Router) {
		if h.adminTokenHash != "" {
			admin.Use(middleware.RequireAdminToken(h.adminTokenHash, h.logger))
		}
		admin.Post("/admin/badges/mint", h.handleMintFor)
		admin.Put("/admin/badges/{badgeID}/score", h.handleCorrectScore)
		admin.Put("/admin/metadata-base-uri", h.handleSetBaseURI)
	})

	r.Mount("/", base)
}

// handleMintSelf issues a badge to the authenticated caller.
func (h *Handler) handleMintSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller := requestcontext.Account(ctx)
	if caller == "" {
		h.logger.ErrorContext(ctx, "account missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req models.MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	badge, err := h.registry.MintSelf(ctx, caller, req.Score)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, badge.ToResponse())
}

// handleMintFor issues a badge on behalf of a target account.
func (h *Handler) handleMintFor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	target, err := id.ParseAccount(req.Target)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	badge, err := h.registry.MintFor(ctx, target, req.Score)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, badge.ToResponse())
}

func (h *Handler) handleCorrectScore(w http.ResponseWriter, r *http.Request) {
	badgeID, err := id.ParseBadgeID(chi.URLParam(r, "badgeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req models.CorrectScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.registry.CorrectScore(r.Context(), badgeID, req.Score); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, models.ScoreResponse{BadgeID: badgeID, Score: req.Score})
}

func (h *Handler) handleSetBaseURI(w http.ResponseWriter, r *http.Request) {
	var req models.SetBaseURIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.registry.SetMetadataBaseURI(r.Context(), req.BaseURI); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleScoreByBadge(w http.ResponseWriter, r *http.Request) {
	badgeID, err := id.ParseBadgeID(chi.URLParam(r, "badgeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	score, err := h.registry.ScoreByBadge(r.Context(), badgeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, models.ScoreResponse{BadgeID: badgeID, Score: score})
}

func (h *Handler) handleBadgeURI(w http.ResponseWriter, r *http.Request) {
	badgeID, err := id.ParseBadgeID(chi.URLParam(r, "badgeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	uri, err := h.registry.BadgeURI(r.Context(), badgeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, models.BadgeURIResponse{BadgeID: badgeID, URI: uri})
}

func (h *Handler) handleBadgeByAccount(w http.ResponseWriter, r *http.Request) {
	account, err := id.ParseAccount(chi.URLParam(r, "account"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	badge, err := h.registry.BadgeByAccount(r.Context(), account)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, badge.ToResponse())
}

func (h *Handler) handleScoreByAccount(w http.ResponseWriter, r *http.Request) {
	account, err := id.ParseAccount(chi.URLParam(r, "account"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	score, err := h.registry.ScoreByAccount(r.Context(), account)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"account": account, "score": score})
}

func (h *Handler) handleHasBadge(w http.ResponseWriter, r *http.Request) {
	account, err := id.ParseAccount(chi.URLParam(r, "account"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	has, err := h.registry.HasBadge(r.Context(), account)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, models.HasBadgeResponse{Account: account, HasBadge: has})
}

func (h *Handler) handleTotalIssued(w http.ResponseWriter, r *http.Request) {
	total, err := h.registry.TotalIssued(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, models.TotalIssuedResponse{TotalIssued: total})
}

// handleTransfer surfaces the soulbound rejection for transfer attempts.
func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// Accounts are passed through unparsed: the rejection must fire for every
	// from/to combination, including the zero account and malformed input.
	err := h.registry.Transfer(r.Context(), id.Account(req.From), id.Account(req.To), id.BadgeID(req.BadgeID))
	shared.WriteError(w, err)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req models.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	owner := requestcontext.Account(r.Context())
	err := h.registry.Approve(r.Context(), owner, id.Account(req.Spender), id.BadgeID(req.BadgeID))
	shared.WriteError(w, err)
}

func (h *Handler) handleSetOperator(w http.ResponseWriter, r *http.Request) {
	var req models.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	owner := requestcontext.Account(r.Context())
	err := h.registry.SetOperator(r.Context(), owner, id.Account(req.Operator), req.Approved)
	shared.WriteError(w, err)
}
