package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfim/order"
	"github.com/katalvlaran/tfim/problem"
)

// newTestStore opens an in-memory store with a fixed, advancing clock.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func sampleReport() *order.Report {
	return &order.Report{
		Solutions: 3,
		Height:    1,
		Skipped:   1,
		Records: []order.Record{
			{C6: -1, OrderP: 1, Config: 0, Layer: 0, Energy: -144},
			{C6: 0.5, OrderP: 0.25, Config: 2, Layer: 0, Energy: -140.5},
		},
	}
}

var sampleMeta = problem.Metadata{Strength: 1, LayerStrength: 0, SideLength: 12, Height: 1, Gamma: 0, TimeLimitSec: 10}

func TestSaveReport_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveReport(ctx, "target/Gamma0.0/Strength1.0_Lattice12_12_1_Time10.json", sampleMeta, sampleReport())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	run, err := s.Run(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, sampleMeta, run.Meta)
	assert.Equal(t, 3, run.Solutions)
	assert.Equal(t, 1, run.Skipped)
	assert.Equal(t, 2, run.Emitted)
	assert.InDelta(t, 0.625, run.MeanOrderP, 1e-12)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC), run.CreatedAt)

	recs, err := s.Records(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sampleReport().Records, recs)
}

func TestRuns_OldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.SaveReport(ctx, "a.json", sampleMeta, sampleReport())
	require.NoError(t, err)
	second, err := s.SaveReport(ctx, "b.json", sampleMeta, &order.Report{Solutions: 0, Height: 1})
	require.NoError(t, err)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
	assert.Equal(t, "b.json", runs[1].Source)
	assert.Zero(t, runs[1].MeanOrderP)

	recs, err := s.Records(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRun_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Run(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Records(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.SaveReport(context.Background(), "x.json", sampleMeta, sampleReport())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	run, err := s.Run(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "x.json", run.Source)
}

func TestSaveReport_CancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveReport(ctx, "x.json", sampleMeta, sampleReport())
	require.Error(t, err)

	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}
