package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPRNG(policy ReseedPolicy) *PRNG {
	return NewPRNG(sequentialPool(), PRNGOptions{
		Policy: policy,
		Clock:  func() time.Time { return frozen },
		Logger: zerolog.Nop(),
	})
}

func TestParseReseedPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ReseedPolicy
		wantErr bool
	}{
		{in: "once", want: ReseedOnce},
		{in: "per-shuffle", want: ReseedPerShuffle},
		{in: "", wantErr: true},
		{in: "always", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReseedPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPRNGSeedsOnce(t *testing.T) {
	p := newTestPRNG(ReseedOnce)
	assert.Equal(t, 1, p.SeedCount())
	// Seed consumes 4+2+4+4 pool bytes
	assert.Equal(t, 14, p.pool.Cursor())

	p.BeginShuffle()
	p.BeginShuffle()
	assert.Equal(t, 1, p.SeedCount(), "once policy must not reseed")
}

func TestPRNGReseedPerShuffle(t *testing.T) {
	p := newTestPRNG(ReseedPerShuffle)
	p.BeginShuffle()
	p.BeginShuffle()
	assert.Equal(t, 3, p.SeedCount())
	assert.Equal(t, 42, p.pool.Cursor())
}

func TestPRNGDefaultsToOnce(t *testing.T) {
	p := NewPRNG(sequentialPool(), PRNGOptions{Logger: zerolog.Nop()})
	assert.Equal(t, ReseedOnce, p.Policy())
}

func TestPRNGReproducibleUnderFixedEntropy(t *testing.T) {
	a := newTestPRNG(ReseedOnce)
	b := newTestPRNG(ReseedOnce)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.RandomIndex(59), b.RandomIndex(59), "sample %d diverged", i)
	}
	assert.Equal(t, a.Uint16(), b.Uint16())
}

func TestPRNGClockChangesSequence(t *testing.T) {
	a := newTestPRNG(ReseedOnce)
	b := NewPRNG(sequentialPool(), PRNGOptions{
		Clock:  func() time.Time { return frozen.Add(time.Nanosecond) },
		Logger: zerolog.Nop(),
	})

	same := true
	for i := 0; i < 32; i++ {
		if a.RandomIndex(1<<30) != b.RandomIndex(1<<30) {
			same = false
			break
		}
	}
	assert.False(t, same, "different clock readings should give different sequences")
}

func TestRandomIndexRange(t *testing.T) {
	p := newTestPRNG(ReseedOnce)
	for _, max := range []int{1, 2, 3, 10, 47, 50, 59, 255, 256, 1000} {
		for i := 0; i < 2000; i++ {
			v := p.RandomIndex(max)
			if v < 0 || v >= max {
				t.Fatalf("RandomIndex(%d) = %d, out of range", max, v)
			}
		}
	}
}

func TestRandomIndexOneIsAlwaysZero(t *testing.T) {
	p := newTestPRNG(ReseedOnce)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, p.RandomIndex(1))
	}
}

func TestRandomIndexDistribution(t *testing.T) {
	const (
		buckets = 10
		samples = 100000
	)
	p := newTestPRNG(ReseedOnce)

	counts := make([]int, buckets)
	for i := 0; i < samples; i++ {
		counts[p.RandomIndex(buckets)]++
	}

	expected := samples / buckets
	for b, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)/10, "bucket %d", b)
	}

	// Non power of two range split into a low and high half
	low := 0
	for i := 0; i < samples; i++ {
		if p.RandomIndex(59) < 30 {
			low++
		}
	}
	assert.InDelta(t, samples*30/59, low, samples/50)
}

func TestRandomIndexPanicsOnNonPositiveMax(t *testing.T) {
	p := newTestPRNG(ReseedOnce)
	assert.Panics(t, func() { p.RandomIndex(0) })
	assert.Panics(t, func() { p.RandomIndex(-5) })
}

func TestUint16Spread(t *testing.T) {
	p := newTestPRNG(ReseedOnce)
	seen := make(map[uint16]bool)
	for i := 0; i < 1000; i++ {
		seen[p.Uint16()] = true
	}
	assert.Greater(t, len(seen), 900)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildTime, info.BuildTime)
}
