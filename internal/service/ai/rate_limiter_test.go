package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/service/ai"
)

func TestRateLimiter_Defaults(t *testing.T) {
	require.Equal(t, ai.DefaultRateLimit, ai.NewRateLimiter(0).Limit())
	require.Equal(t, ai.DefaultRateLimit, ai.NewRateLimiter(-3).Limit())
	require.Equal(t, 20, ai.NewRateLimiter(20).Limit())
}

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	r := ai.NewRateLimiter(2)
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx, "generate"))
	require.NoError(t, r.Wait(ctx, "translate"))

	// The bucket is drained, so a third call cannot fit before the deadline.
	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	require.Error(t, r.Wait(ctx, "generate"))
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := ai.NewRateLimiter(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, r.Wait(ctx, "generate"))
}
