package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestPacer_SpacesTakes verifies the pacer limits throughput to roughly
// the configured rate.
func TestPacer_SpacesTakes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	p := NewPacer(ctx, 100)

	start := time.Now()
	for i := 0; i < 20; i++ {
		require.True(t, p.Take())
	}
	elapsed := time.Since(start)

	// 20 takes at 100/s need ~190ms after the initial slot; allow slack
	// for scheduling but reject an unlimited pacer.
	require.Greater(t, elapsed, 100*time.Millisecond)
}

// TestPacer_CancelStopsTakes verifies Take drains and reports closure
// after cancellation.
func TestPacer_CancelStopsTakes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPacer(ctx, 1000)

	require.True(t, p.Take())
	cancel()

	// The provider may deliver a few buffered slots before it notices.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("pacer did not stop after cancel")
		default:
		}
		if !p.Take() {
			return
		}
	}
}

func TestPacer_MinimumRate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	p := NewPacer(ctx, 0)
	require.Equal(t, 1, p.Rate())
}
