package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "merit/pkg/domain"
)

func TestMemoryPublisher(t *testing.T) {
	ctx := context.Background()
	pub := NewMemory()
	recipient := id.Account("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, pub.Publish(ctx, NewBadgeIssued(recipient, 1, 60, PathSelf, false, at)))
	require.NoError(t, pub.Publish(ctx, NewScoreCorrected(recipient, 1, 60, 80, at.Add(time.Hour))))

	published := pub.Events()
	require.Len(t, published, 2)

	issued := published[0]
	assert.Equal(t, TypeBadgeIssued, issued.Type)
	assert.Equal(t, recipient, issued.Recipient)
	assert.Equal(t, id.BadgeID(1), issued.BadgeID)
	assert.Equal(t, uint(60), issued.Score)
	assert.Equal(t, PathSelf, issued.Path)
	assert.False(t, issued.BelowFloor)
	assert.Equal(t, at, issued.Timestamp)
	assert.NotEmpty(t, issued.EventID)

	corrected := published[1]
	assert.Equal(t, TypeScoreCorrected, corrected.Type)
	assert.Equal(t, uint(80), corrected.Score)
	assert.Equal(t, uint(60), corrected.PreviousScore)
	assert.NotEqual(t, issued.EventID, corrected.EventID)
}

func TestMemoryEventsSnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	pub := NewMemory()
	recipient := id.Account("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	require.NoError(t, pub.Publish(ctx, NewBadgeIssued(recipient, 1, 40, PathAdmin, false, time.Now())))
	snapshot := pub.Events()
	require.NoError(t, pub.Publish(ctx, NewBadgeIssued(recipient, 2, 50, PathAdmin, false, time.Now())))

	assert.Len(t, snapshot, 1)
	assert.Len(t, pub.Events(), 2)
}

func TestBelowFloorFlagOnAdminMints(t *testing.T) {
	event := NewBadgeIssued(id.Account("0xcccccccccccccccccccccccccccccccccccccccc"), 3, 10, PathAdmin, true, time.Now())
	assert.Equal(t, PathAdmin, event.Path)
	assert.True(t, event.BelowFloor)
}
