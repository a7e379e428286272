package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge_NestedKeysPreserved(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1, "y": 2}}
	override := map[string]any{"a": map[string]any{"y": 3}}

	merged := DeepMerge(base, override)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 3}}, merged)
}

func TestDeepMerge_InputsNotMutated(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1, "y": 2}}
	override := map[string]any{"a": map[string]any{"y": 3}, "b": 4}

	DeepMerge(base, override)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 2}}, base)
	assert.Equal(t, map[string]any{"a": map[string]any{"y": 3}, "b": 4}, override)
}

func TestDeepMerge_ArraysReplacedWholesale(t *testing.T) {
	base := map[string]any{"tags": []any{"a", "b", "c"}}
	override := map[string]any{"tags": []any{"z"}}

	merged := DeepMerge(base, override)

	assert.Equal(t, []any{"z"}, merged["tags"])
}

func TestDeepMerge_BaseOnlyKeysRetained(t *testing.T) {
	base := map[string]any{"keep": "me", "nested": map[string]any{"keep": true}}
	override := map[string]any{"nested": map[string]any{"extra": 1}}

	merged := DeepMerge(base, override)

	assert.Equal(t, "me", merged["keep"])
	assert.Equal(t, map[string]any{"keep": true, "extra": 1}, merged["nested"])
}

func TestDeepMerge_TypeMismatchReplaces(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		override map[string]any
		want     any
	}{
		{
			name:     "map over scalar",
			base:     map[string]any{"k": "scalar"},
			override: map[string]any{"k": map[string]any{"v": 1}},
			want:     map[string]any{"v": 1},
		},
		{
			name:     "scalar over map",
			base:     map[string]any{"k": map[string]any{"v": 1}},
			override: map[string]any{"k": "scalar"},
			want:     "scalar",
		},
		{
			name:     "array over map",
			base:     map[string]any{"k": map[string]any{"v": 1}},
			override: map[string]any{"k": []any{1, 2}},
			want:     []any{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := DeepMerge(tt.base, tt.override)
			assert.Equal(t, tt.want, merged["k"])
		})
	}
}

func TestDeepMerge_EmptyOverrideIsIdentity(t *testing.T) {
	base := Defaults()
	merged := DeepMerge(base, map[string]any{})
	assert.Equal(t, base, merged)
}
