package optcache

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

func TestGetBuildsOnceAndCountsHits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	c := New(4, log)
	k := Key{Format: "HH:mm", Min: 0, Max: 3600, Step: 1800}

	first := c.Get(k)
	second := c.Get(k)

	want := timeutil.Options("HH:mm", 0, 3600, 1800)
	if diff := cmp.Diff(want, first.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"00", "01"}, first.Steps.Hours)
	require.Equal(t, first, second)
	require.Equal(t, Stats{Hits: 1, Misses: 1, Len: 1}, c.Stats())
	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("option grid built")))
}

func TestLocaleIsPartOfTheKey(t *testing.T) {
	t.Parallel()

	c := New(4, nil)
	en := c.Get(Key{Format: "MMM", Min: 0, Max: 0, Step: 60})
	fr := c.Get(Key{Format: "MMM", Min: 0, Max: 0, Step: 60, Locale: "fr"})

	require.Len(t, en.Options, 1)
	require.Len(t, fr.Options, 1)
	require.NotEqual(t, en.Options[0].Label, fr.Options[0].Label)
	require.Equal(t, 2, c.Stats().Misses)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New(2, nil)
	a := Key{Format: "HH:mm", Max: 60, Step: 60}
	b := Key{Format: "HH:mm", Max: 120, Step: 60}
	d := Key{Format: "HH:mm", Max: 180, Step: 60}

	c.Get(a)
	c.Get(b)
	c.Get(a)
	c.Get(d)
	c.Get(b)

	require.Equal(t, Stats{Hits: 1, Misses: 4, Len: 2}, c.Stats())

	c.Clear()
	require.Equal(t, Stats{}, c.Stats())
}

func TestConcurrentGet(t *testing.T) {
	t.Parallel()

	c := New(0, nil)
	k := Key{Format: "hh:mm a", Max: 86399, Step: 900}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.Len(t, c.Get(k).Options, 96)
		}()
	}
	wg.Wait()

	stats := c.Stats()
	require.Equal(t, 1, stats.Misses)
	require.Equal(t, 15, stats.Hits)
}
