//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	id "merit/pkg/domain"
	"merit/pkg/testutil/containers"
)

func TestKafkaPublishRoundTrip(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedpandaContainer(t)

	pub, err := NewKafka(ctx, []string{rc.Broker}, "merit.badge.events.test")
	require.NoError(t, err)
	t.Cleanup(pub.Close)

	require.NoError(t, pub.Health(ctx))

	recipient := id.Account("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	at := time.Now().UTC().Truncate(time.Millisecond)
	issued := NewBadgeIssued(recipient, 1, 60, PathSelf, false, at)
	corrected := NewScoreCorrected(recipient, 1, 60, 80, at.Add(time.Minute))

	require.NoError(t, pub.Publish(ctx, issued))
	require.NoError(t, pub.Publish(ctx, corrected))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rc.Broker),
		kgo.ConsumeTopics("merit.badge.events.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	var records []*kgo.Record
	deadline, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for len(records) < 2 {
		fetches := consumer.PollFetches(deadline)
		require.NoError(t, fetches.Err())
		records = append(records, fetches.Records()...)
	}
	require.Len(t, records, 2)

	// Both events share the recipient key, so they land on one partition in
	// publish order.
	for _, record := range records {
		require.Equal(t, recipient.String(), string(record.Key))
	}

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, TypeBadgeIssued, got.Type)
	require.Equal(t, issued.EventID, got.EventID)
	require.Equal(t, recipient, got.Recipient)
	require.Equal(t, id.BadgeID(1), got.BadgeID)
	require.Equal(t, uint(60), got.Score)
	require.Equal(t, PathSelf, got.Path)
	require.True(t, got.Timestamp.Equal(at))

	require.NoError(t, json.Unmarshal(records[1].Value, &got))
	require.Equal(t, TypeScoreCorrected, got.Type)
	require.Equal(t, uint(80), got.Score)
	require.Equal(t, uint(60), got.PreviousScore)
}

func TestKafkaTopicCreationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedpandaContainer(t)

	first, err := NewKafka(ctx, []string{rc.Broker}, "merit.badge.events.test")
	require.NoError(t, err)
	first.Close()

	second, err := NewKafka(ctx, []string{rc.Broker}, "merit.badge.events.test")
	require.NoError(t, err)
	second.Close()
}
