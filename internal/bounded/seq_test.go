package bounded

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushAll(s *Seq[string], vs ...string) {
	for _, v := range vs {
		s.Push(v)
	}
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0, EvictOldest) })
	assert.Panics(t, func() { New[int](-1, EvictNewest) })
}

func TestSeqEmpty(t *testing.T) {
	s := New[string](3, EvictOldest)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 3, s.Cap())
	assert.Empty(t, slices.Collect(s.Oldest()))
	assert.Empty(t, slices.Collect(s.Newest()))

	got := Collect(s.Oldest(), s.Len())
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestSeqPushBelowCapacity(t *testing.T) {
	s := New[string](5, EvictOldest)
	pushAll(s, "a", "b", "c")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(s.Oldest()))
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(s.Newest()))
}

func TestSeqEvictOldest(t *testing.T) {
	tests := []struct {
		name        string
		pushes      []string
		wantOldest  []string
		wantEvicted []string
	}{
		{
			name:       "exactly full",
			pushes:     []string{"a", "b", "c"},
			wantOldest: []string{"a", "b", "c"},
		},
		{
			name:        "one past full",
			pushes:      []string{"a", "b", "c", "d"},
			wantOldest:  []string{"b", "c", "d"},
			wantEvicted: []string{"a"},
		},
		{
			name:        "wraps the ring twice",
			pushes:      []string{"a", "b", "c", "d", "e", "f", "g"},
			wantOldest:  []string{"e", "f", "g"},
			wantEvicted: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[string](3, EvictOldest)
			var evicted []string
			for _, v := range tt.pushes {
				if old, ok := s.Push(v); ok {
					evicted = append(evicted, old)
				}
			}

			assert.Equal(t, tt.wantOldest, slices.Collect(s.Oldest()))
			assert.Equal(t, tt.wantEvicted, evicted)
			assert.LessOrEqual(t, s.Len(), s.Cap())
		})
	}
}

func TestSeqEvictNewest(t *testing.T) {
	tests := []struct {
		name        string
		pushes      []string
		wantNewest  []string
		wantEvicted []string
	}{
		{
			name:       "exactly full",
			pushes:     []string{"a", "b", "c"},
			wantNewest: []string{"c", "b", "a"},
		},
		{
			name:        "one past full replaces the newest",
			pushes:      []string{"a", "b", "c", "d"},
			wantNewest:  []string{"d", "b", "a"},
			wantEvicted: []string{"c"},
		},
		{
			name:        "sustained pushes keep the bottom entries",
			pushes:      []string{"a", "b", "c", "d", "e"},
			wantNewest:  []string{"e", "b", "a"},
			wantEvicted: []string{"c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[string](3, EvictNewest)
			var evicted []string
			for _, v := range tt.pushes {
				if old, ok := s.Push(v); ok {
					evicted = append(evicted, old)
				}
			}

			assert.Equal(t, tt.wantNewest, slices.Collect(s.Newest()))
			assert.Equal(t, tt.wantEvicted, evicted)
		})
	}
}

func TestSeqIterationStopsEarly(t *testing.T) {
	s := New[int](4, EvictOldest)
	for i := range 4 {
		s.Push(i)
	}

	var seen []int
	for v := range s.Newest() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 2}, seen)
}

func TestSeqReadsDoNotMutate(t *testing.T) {
	s := New[string](2, EvictOldest)
	pushAll(s, "x", "y", "z")

	first := Collect(s.Oldest(), s.Len())
	second := Collect(s.Oldest(), s.Len())
	assert.Equal(t, first, second)
	assert.Equal(t, 2, s.Len())

	first[0] = "mutated"
	assert.Equal(t, []string{"y", "z"}, slices.Collect(s.Oldest()))
}
