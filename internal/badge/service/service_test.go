package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"merit/internal/badge/events"
	"merit/internal/badge/models"
	"merit/internal/badge/store"
	id "merit/pkg/domain"
	dErrors "merit/pkg/domain-errors"
	"merit/pkg/requestcontext"
)

const (
	accountAlice = id.Account("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	accountBob   = id.Account("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	accountCarol = id.Account("0xcccccccccccccccccccccccccccccccccccccccc")
)

type RegistryServiceSuite struct {
	suite.Suite
	svc      *Service
	store    *store.InMemory
	events   *events.Memory
	ctx      context.Context
	adminCtx context.Context
}

func (s *RegistryServiceSuite) SetupTest() {
	s.store = store.NewInMemory()
	s.events = events.NewMemory()
	s.svc = New(s.store,
		WithEvents(s.events),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.ctx = context.Background()
	s.adminCtx = requestcontext.WithAdmin(context.Background(), true)
}

func TestRegistryServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceSuite))
}

func (s *RegistryServiceSuite) TestMintSelf() {
	s.Run("issues a badge at the floor and above", func() {
		badge, err := s.svc.MintSelf(s.ctx, accountAlice, models.MinimumScore)
		s.Require().NoError(err)
		s.Equal(id.BadgeID(1), badge.ID)
		s.Equal(accountAlice, badge.Owner)
		s.Equal(models.MinimumScore, badge.Score)

		has, err := s.svc.HasBadge(s.ctx, accountAlice)
		s.Require().NoError(err)
		s.True(has)

		score, err := s.svc.ScoreByAccount(s.ctx, accountAlice)
		s.Require().NoError(err)
		s.Equal(models.MinimumScore, score)
	})

	s.Run("rejects score below minimum with no state change", func() {
		before, err := s.svc.TotalIssued(s.ctx)
		s.Require().NoError(err)

		_, err = s.svc.MintSelf(s.ctx, accountBob, models.MinimumScore-1)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInsufficientScore))

		after, err := s.svc.TotalIssued(s.ctx)
		s.Require().NoError(err)
		s.Equal(before, after)

		has, err := s.svc.HasBadge(s.ctx, accountBob)
		s.Require().NoError(err)
		s.False(has)
	})

	s.Run("second mint for the same caller fails with AlreadyMinted", func() {
		_, err := s.svc.MintSelf(s.ctx, accountCarol, 50)
		s.Require().NoError(err)

		_, err = s.svc.MintSelf(s.ctx, accountCarol, 90)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyMinted))
	})

	s.Run("rejects the zero account", func() {
		_, err := s.svc.MintSelf(s.ctx, id.ZeroAccount, 50)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *RegistryServiceSuite) TestBadgeIDContiguity() {
	accounts := []id.Account{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333",
		"0x4444444444444444444444444444444444444444",
	}

	seen := map[id.BadgeID]bool{}
	for i, account := range accounts {
		badge, err := s.svc.MintSelf(s.ctx, account, 40+uint(i))
		s.Require().NoError(err)
		s.False(seen[badge.ID], "badge id reused")
		seen[badge.ID] = true
	}

	// Failed mints consume no ids.
	_, err := s.svc.MintSelf(s.ctx, accountAlice, 10)
	s.Require().Error(err)
	_, err = s.svc.MintSelf(s.ctx, accounts[0], 99)
	s.Require().Error(err)

	total, err := s.svc.TotalIssued(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(len(accounts)), total)

	// Issued ids are exactly {1..total}.
	for i := uint64(1); i <= total; i++ {
		s.True(seen[id.BadgeID(i)], "missing badge id %d", i)
	}
}

func (s *RegistryServiceSuite) TestMintFor() {
	s.Run("requires administrator authority", func() {
		_, err := s.svc.MintFor(s.ctx, accountAlice, 50)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
	})

	s.Run("mints on behalf of a target", func() {
		badge, err := s.svc.MintFor(s.adminCtx, accountAlice, 40)
		s.Require().NoError(err)
		s.Equal(accountAlice, badge.Owner)

		score, err := s.svc.ScoreByAccount(s.ctx, accountAlice)
		s.Require().NoError(err)
		s.Equal(uint(40), score)
	})

	s.Run("permits below-floor attestation mints and flags them", func() {
		badge, err := s.svc.MintFor(s.adminCtx, accountBob, models.MinimumScore-10)
		s.Require().NoError(err)
		s.True(badge.BelowFloor())

		published := s.events.Events()
		s.Require().NotEmpty(published)
		last := published[len(published)-1]
		s.Equal(events.TypeBadgeIssued, last.Type)
		s.Equal(events.PathAdmin, last.Path)
		s.True(last.BelowFloor)
	})

	s.Run("rejects a target that already minted", func() {
		_, err := s.svc.MintFor(s.adminCtx, accountAlice, 70)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyMinted))
	})
}

func (s *RegistryServiceSuite) TestScoreQueries() {
	badge, err := s.svc.MintSelf(s.ctx, accountAlice, 64)
	s.Require().NoError(err)

	s.Run("by badge id", func() {
		score, err := s.svc.ScoreByBadge(s.ctx, badge.ID)
		s.Require().NoError(err)
		s.Equal(uint(64), score)
	})

	s.Run("unissued id fails with BadgeNotFound", func() {
		_, err := s.svc.ScoreByBadge(s.ctx, id.BadgeID(999))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadgeNotFound))
	})

	s.Run("account without badge fails with NoBadge", func() {
		_, err := s.svc.ScoreByAccount(s.ctx, accountBob)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNoBadge))
	})
}

func (s *RegistryServiceSuite) TestCorrectScore() {
	badge, err := s.svc.MintSelf(s.ctx, accountAlice, 40)
	s.Require().NoError(err)

	s.Run("non-administrator is rejected without state change", func() {
		err := s.svc.CorrectScore(s.ctx, badge.ID, 80)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))

		score, err := s.svc.ScoreByBadge(s.ctx, badge.ID)
		s.Require().NoError(err)
		s.Equal(uint(40), score)
	})

	s.Run("correction below floor is rejected", func() {
		err := s.svc.CorrectScore(s.adminCtx, badge.ID, models.MinimumScore-1)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeScoreBelowMinimum))
	})

	s.Run("unissued badge fails with BadgeNotFound", func() {
		err := s.svc.CorrectScore(s.adminCtx, id.BadgeID(42), 50)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadgeNotFound))
	})

	s.Run("administrator correction overwrites the score and emits an event", func() {
		s.Require().NoError(s.svc.CorrectScore(s.adminCtx, badge.ID, 77))

		score, err := s.svc.ScoreByBadge(s.ctx, badge.ID)
		s.Require().NoError(err)
		s.Equal(uint(77), score)

		published := s.events.Events()
		s.Require().NotEmpty(published)
		last := published[len(published)-1]
		s.Equal(events.TypeScoreCorrected, last.Type)
		s.Equal(uint(40), last.PreviousScore)
		s.Equal(uint(77), last.Score)
	})
}

// TestAdminScenario walks the full admin lifecycle: admin mint, duplicate
// self-mint rejection, below-floor correction rejection, then a valid
// correction.
func (s *RegistryServiceSuite) TestAdminScenario() {
	badge, err := s.svc.MintFor(s.adminCtx, accountAlice, 40)
	s.Require().NoError(err)
	s.Equal(id.BadgeID(1), badge.ID)

	total, err := s.svc.TotalIssued(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), total)

	score, err := s.svc.ScoreByAccount(s.ctx, accountAlice)
	s.Require().NoError(err)
	s.Equal(uint(40), score)

	_, err = s.svc.MintSelf(s.ctx, accountAlice, 60)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAlreadyMinted))

	err = s.svc.CorrectScore(s.adminCtx, badge.ID, 20)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeScoreBelowMinimum))

	score, err = s.svc.ScoreByAccount(s.ctx, accountAlice)
	s.Require().NoError(err)
	s.Equal(uint(40), score)

	s.Require().NoError(s.svc.CorrectScore(s.adminCtx, badge.ID, 50))

	score, err = s.svc.ScoreByAccount(s.ctx, accountAlice)
	s.Require().NoError(err)
	s.Equal(uint(50), score)
}

// TestSoulboundGuard verifies every transfer and approval combination is
// rejected, including the zero-account sentinel, and that registry state
// never changes.
func (s *RegistryServiceSuite) TestSoulboundGuard() {
	badge, err := s.svc.MintSelf(s.ctx, accountAlice, 60)
	s.Require().NoError(err)

	pairs := []struct{ from, to id.Account }{
		{accountAlice, accountBob},
		{accountBob, accountAlice},
		{accountAlice, id.ZeroAccount},
		{id.ZeroAccount, accountAlice},
		{id.ZeroAccount, id.ZeroAccount},
	}
	for _, pair := range pairs {
		err := s.svc.Transfer(s.ctx, pair.from, pair.to, badge.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeSoulboundViolation),
			"transfer %s -> %s must be soulbound-rejected", pair.from, pair.to)
	}

	err = s.svc.Approve(s.ctx, accountAlice, accountBob, badge.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeSoulboundViolation))

	err = s.svc.SetOperator(s.ctx, accountAlice, accountBob, true)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeSoulboundViolation))

	// Rejection also covers admin contexts; authority grants no transfer path.
	err = s.svc.Transfer(s.adminCtx, accountAlice, accountBob, badge.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeSoulboundViolation))

	owner, err := s.svc.BadgeByAccount(s.ctx, accountAlice)
	s.Require().NoError(err)
	s.Equal(badge.ID, owner.ID)
	s.Equal(accountAlice, owner.Owner)
}

func (s *RegistryServiceSuite) TestMetadataBaseURI() {
	badge, err := s.svc.MintSelf(s.ctx, accountAlice, 50)
	s.Require().NoError(err)

	s.Run("empty base URI yields empty badge URI", func() {
		uri, err := s.svc.BadgeURI(s.ctx, badge.ID)
		s.Require().NoError(err)
		s.Equal("", uri)
	})

	s.Run("set requires administrator authority", func() {
		err := s.svc.SetMetadataBaseURI(s.ctx, "https://merit.example/badges/")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotAuthorized))
	})

	s.Run("overwrites unconditionally with no format validation", func() {
		s.Require().NoError(s.svc.SetMetadataBaseURI(s.adminCtx, "not a uri at all "))
		s.Require().NoError(s.svc.SetMetadataBaseURI(s.adminCtx, "https://merit.example/badges/"))

		uri, err := s.svc.BadgeURI(s.ctx, badge.ID)
		s.Require().NoError(err)
		s.Equal("https://merit.example/badges/1", uri)
	})

	s.Run("unissued badge has no URI", func() {
		_, err := s.svc.BadgeURI(s.ctx, id.BadgeID(404))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadgeNotFound))
	})
}

func (s *RegistryServiceSuite) TestIssuanceEvents() {
	issuedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(s.ctx, issuedAt)

	badge, err := s.svc.MintSelf(ctx, accountAlice, 55)
	s.Require().NoError(err)

	published := s.events.Events()
	s.Require().Len(published, 1)
	event := published[0]
	s.Equal(events.TypeBadgeIssued, event.Type)
	s.Equal(accountAlice, event.Recipient)
	s.Equal(badge.ID, event.BadgeID)
	s.Equal(uint(55), event.Score)
	s.Equal(events.PathSelf, event.Path)
	s.False(event.BelowFloor)
	s.NotEmpty(event.EventID)
	s.True(event.Timestamp.Equal(issuedAt))

	// Rejected mints publish nothing.
	_, err = s.svc.MintSelf(ctx, accountBob, 1)
	s.Require().Error(err)
	s.Len(s.events.Events(), 1)
}
