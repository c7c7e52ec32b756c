package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzgrep/fzgrep/internal/fuzzy"
)

func testMatch(t *testing.T) fuzzy.Match {
	t.Helper()
	m := fuzzy.MatchLine("test", "test")
	require.NotNil(t, m)
	return *m
}

func TestAccumulator_FillsThenReady(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, []string{"b1"}, 2)
	require.False(t, a.Ready())

	a.Feed("after1")
	require.False(t, a.Ready())

	a.Feed("after2")
	require.True(t, a.Ready())

	rec := a.Record()
	assert.Equal(t, "test", rec.Line)
	assert.Equal(t, []string{"b1"}, rec.Context.Before)
	assert.Equal(t, []string{"after1", "after2"}, rec.Context.After)
}

func TestAccumulator_BornReadyWithZeroAfter(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{LineNumber: 7}, nil, 0)
	require.True(t, a.Ready())

	rec := a.Record()
	assert.Nil(t, rec.Context.Before)
	assert.Nil(t, rec.Context.After)
	assert.Equal(t, 7, rec.Location.LineNumber)
}

func TestAccumulator_FinalizeEarlyYieldsPrefix(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, nil, 3)
	a.Feed("after1")

	rec := a.Finalize()
	assert.Equal(t, []string{"after1"}, rec.Context.After)
	assert.True(t, a.Ready())
}

func TestAccumulator_FinalizeWithNothingCollected(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, nil, 2)
	rec := a.Finalize()
	assert.Empty(t, rec.Context.After)
	assert.NotNil(t, rec.Context.After)
}

func TestAccumulator_FeedAfterReadyPanics(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, nil, 1)
	a.Feed("after1")
	require.True(t, a.Ready())
	assert.Panics(t, func() { a.Feed("after2") })
}

func TestAccumulator_FinalizeAfterReadyPanics(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, nil, 0)
	assert.Panics(t, func() { a.Finalize() })
}

func TestAccumulator_RecordWhilePendingPanics(t *testing.T) {
	a := NewAccumulator("test", testMatch(t), Location{}, nil, 1)
	assert.Panics(t, func() { a.Record() })
}

func TestWindow_SlidesAtCapacity(t *testing.T) {
	w := NewWindow(3)
	assert.Empty(t, w.Snapshot())

	w.Push("one")
	assert.Equal(t, []string{"one"}, w.Snapshot())
	w.Push("two")
	w.Push("three")
	assert.Equal(t, []string{"one", "two", "three"}, w.Snapshot())

	w.Push("four")
	assert.Equal(t, []string{"two", "three", "four"}, w.Snapshot())
}

func TestWindow_ZeroCapacity(t *testing.T) {
	w := NewWindow(0)
	w.Push("something")
	assert.Nil(t, w.Snapshot())
}

func TestWindow_SnapshotIsIndependent(t *testing.T) {
	w := NewWindow(2)
	w.Push("one")
	snap := w.Snapshot()
	w.Push("two")
	w.Push("three")
	assert.Equal(t, []string{"one"}, snap)
}

func TestRecord_OrderingByScoreOnly(t *testing.T) {
	strong := fuzzy.MatchLine("test", "test")
	weak := fuzzy.MatchLine("t", "test")
	require.NotNil(t, strong)
	require.NotNil(t, weak)

	a := &Record{Line: "test", Match: *strong}
	b := &Record{Line: "test elsewhere", Match: *weak}
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))

	// Equal scores compare equal regardless of content or location.
	c := &Record{Line: "completely different", Match: *strong,
		Location: Location{SourceName: "other.txt", LineNumber: 9}}
	assert.False(t, a.Less(c))
	assert.False(t, c.Less(a))
}
