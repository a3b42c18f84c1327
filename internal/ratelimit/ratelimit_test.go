package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	readerA = "203.0.113.7"
	readerB = "198.51.100.23"
)

func TestAllow_BurstPerClient(t *testing.T) {
	tests := []struct {
		name    string
		burst   int
		lookups int
		want    int
	}{
		{"burst covers a page of lookups", 3, 3, 3},
		{"lookups beyond burst are refused", 2, 5, 2},
		{"single token", 1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := New(0.01, tt.burst, 0)
			t.Cleanup(rl.Stop)

			allowed := 0
			for range tt.lookups {
				if rl.Allow(readerA) {
					allowed++
				}
			}
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	rl := New(0.01, 1, 0)
	t.Cleanup(rl.Stop)

	require.True(t, rl.Allow(readerA))
	assert.False(t, rl.Allow(readerA))
	assert.True(t, rl.Allow(readerB))
	assert.Equal(t, 2, rl.Len())
}

func TestWait_ReturnsImmediatelyWithinBurst(t *testing.T) {
	rl := New(0.01, 2, 0)
	t.Cleanup(rl.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, rl.Wait(ctx, readerA))
	require.NoError(t, rl.Wait(ctx, readerA))
}

func TestWait_HonoursContext(t *testing.T) {
	rl := New(0.01, 1, 0)
	t.Cleanup(rl.Stop)
	require.True(t, rl.Allow(readerA))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Error(t, rl.Wait(ctx, readerA))
}

func TestSweep_EvictsIdleClients(t *testing.T) {
	rl := New(1, 1, time.Minute)
	t.Cleanup(rl.Stop)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow(readerA)
	now = now.Add(30 * time.Second)
	rl.Allow(readerB)

	now = now.Add(45 * time.Second)
	rl.sweep()
	require.Equal(t, 1, rl.Len())

	// An evicted client starts over with a full bucket.
	assert.True(t, rl.Allow(readerA))
}

func TestNew_Defaults(t *testing.T) {
	rl := New(20, 40, 0)
	rl.Stop()
	rl.Stop()

	assert.Equal(t, DefaultIdleTTL, rl.idleTTL)
	assert.InDelta(t, 20.0, rl.RPS(), 1e-9)
}
