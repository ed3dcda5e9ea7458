package service

import (
	"context"
	"testing"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutbox_FlushPublishesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventLog(ctrl)
	outbox := NewOutbox(events, zerolog.Nop())
	ctx := context.Background()

	first, err := domain.NewEnvelope(domain.EventWalletCreated, 1, "w1", map[string]string{"seq": "1"})
	require.NoError(t, err)
	second, err := domain.NewEnvelope(domain.EventWalletUpdated, 1, "w1", map[string]string{"seq": "2"})
	require.NoError(t, err)

	outbox.Stage(first)
	outbox.Stage(second)

	var published []string
	events.EXPECT().Publish(ctx, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, env domain.Envelope) error {
			published = append(published, env.EventID)
			return nil
		})

	outbox.Flush(ctx)
	assert.Equal(t, []string{first.EventID, second.EventID}, published)

	// Flush drains the queue.
	outbox.Flush(ctx)
}

func TestOutbox_PublishFailureDoesNotStopFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventLog(ctrl)
	outbox := NewOutbox(events, zerolog.Nop())
	ctx := context.Background()

	first, err := domain.NewEnvelope(domain.EventWalletCreated, 1, "w1", map[string]string{"seq": "1"})
	require.NoError(t, err)
	second, err := domain.NewEnvelope(domain.EventWalletUpdated, 1, "w1", map[string]string{"seq": "2"})
	require.NoError(t, err)

	outbox.Stage(first)
	outbox.Stage(second)

	gomock.InOrder(
		events.EXPECT().Publish(ctx, gomock.Any()).Return(assert.AnError),
		events.EXPECT().Publish(ctx, gomock.Any()).Return(nil),
	)

	outbox.Flush(ctx)
}
