package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCharacteristics(t *testing.T) {
	p := New("zig", nil)

	require.Len(t, p.Characteristics, 5)
	for _, d := range Dimensions() {
		assert.Equal(t, float64(DefaultRating), p.Characteristics[d], "dimension %s", d)
	}
	assert.Empty(t, p.UseCases)
	assert.Empty(t, p.Libraries)
}

func TestNew_PartialOverrideFillsPerKey(t *testing.T) {
	p := New("zig", map[Dimension]float64{
		Performance: 9,
		Memory:      8,
	})

	assert.Equal(t, 9.0, p.Characteristics[Performance])
	assert.Equal(t, 8.0, p.Characteristics[Memory])
	assert.Equal(t, 5.0, p.Characteristics[StartupTime])
	assert.Equal(t, 5.0, p.Characteristics[Ecosystem])
	assert.Equal(t, 5.0, p.Characteristics[Concurrency])
}

func TestAddUseCase_FluentAndOrdered(t *testing.T) {
	p := New("zig", nil).
		AddUseCase("system", 9).
		AddUseCase("embedded", 8).
		AddUseCase("system", 7) // duplicates allowed, first wins on lookup

	require.Len(t, p.UseCases, 3)
	assert.Equal(t, "system", p.UseCases[0].Name)
	assert.Equal(t, "embedded", p.UseCases[1].Name)

	score, ok := p.UseCaseScore("system")
	require.True(t, ok)
	assert.Equal(t, 9.0, score)

	_, ok = p.UseCaseScore("web")
	assert.False(t, ok)
}

func TestAddLibrary_LastWriteWins(t *testing.T) {
	p := New("zig", nil).
		AddLibrary("std", "standard library", 7).
		AddLibrary("std", "standard library", 9)

	require.Len(t, p.Libraries, 1)
	assert.Equal(t, 9.0, p.Libraries["std"].Maturity)
}

func TestPortable_SnapshotIsIndependent(t *testing.T) {
	p := New("zig", map[Dimension]float64{Performance: 9}).
		AddUseCase("system", 9).
		AddLibrary("std", "standard library", 7)

	snap := p.Portable()
	assert.Equal(t, "zig", snap.Name)
	assert.Equal(t, 9.0, snap.Characteristics["performance"])
	assert.Equal(t, 5.0, snap.Characteristics["memory"])
	require.Len(t, snap.UseCases, 1)
	require.Len(t, snap.Libraries, 1)

	// Mutating the snapshot must not leak back into the profile.
	snap.Characteristics["performance"] = 1
	snap.UseCases[0].Score = 1
	snap.Libraries["std"] = Library{Purpose: "changed", Maturity: 1}

	assert.Equal(t, 9.0, p.Characteristics[Performance])
	assert.Equal(t, 9.0, p.UseCases[0].Score)
	assert.Equal(t, 7.0, p.Libraries["std"].Maturity)
}
