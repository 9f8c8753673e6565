package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rtlil/internal/diag"
)

func TestCheckFiles_Mixed(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.il", adderSrc),
		writeFile(t, dir, "b.il", brokenSrc),
		filepath.Join(dir, "missing.il"),
		writeFile(t, dir, "c.il", adderSrc),
	}
	sink := newRecordSink(64)

	res, err := CheckFiles(context.Background(), paths, CheckOptions{Jobs: 2, Progress: sink})
	require.NoError(t, err)
	require.Len(t, res.Files, 4)
	require.Equal(t, 2, res.Failed())

	for i, p := range paths {
		require.Equal(t, p, res.Files[i].Path)
	}
	require.True(t, res.Files[0].OK)
	require.False(t, res.Files[1].OK)
	require.Equal(t, diag.SynUnexpectedToken, res.Files[1].Bag.Items()[0].Code)
	require.False(t, res.Files[2].OK)
	require.Equal(t, diag.IOLoadFileError, res.Files[2].Bag.Items()[0].Code)

	require.Equal(t, 2, res.Total.Modules)
	require.Equal(t, 2, res.Total.Cells)
	require.Equal(t, 6, res.Total.Ports)
	require.Equal(t, map[string]int{"$add": 2}, res.Total.CellTypes)

	require.Equal(t, 2, res.Bag().Len())

	var parseDone, parseErr, loadErr int
	for _, evt := range sink.drain() {
		switch {
		case evt.Stage == StageParse && evt.Status == StatusDone:
			parseDone++
		case evt.Stage == StageParse && evt.Status == StatusError:
			parseErr++
		case evt.Stage == StageLoad && evt.Status == StatusError:
			loadErr++
		}
	}
	require.Equal(t, 2, parseDone)
	require.Equal(t, 1, parseErr)
	require.Equal(t, 1, loadErr)
}

func TestCheckFiles_Empty(t *testing.T) {
	res, err := CheckFiles(context.Background(), nil, CheckOptions{})
	require.NoError(t, err)
	require.Empty(t, res.Files)
	require.Zero(t, res.Failed())
}

func TestCheckFiles_Cancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.il", adderSrc)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckFiles(ctx, []string{path}, CheckOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckFiles_Timings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.il", adderSrc)

	res, err := CheckFiles(context.Background(), []string{path}, CheckOptions{Timings: true})
	require.NoError(t, err)
	require.Zero(t, res.Files[0].Bag.Len())
	require.Equal(t, 1, res.Summary.Len())
	require.Equal(t, diag.ObsTimings, res.Bag().Items()[0].Code)

	var names []string
	for _, p := range res.Timing.Phases {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"load", "parse", "stats"}, names)
}

func TestCheckFiles_UsesCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	paths := []string{
		writeFile(t, dir, "a.il", adderSrc),
		writeFile(t, dir, "b.il", brokenSrc),
	}
	opts := CheckOptions{Cache: cache}

	first, err := CheckFiles(context.Background(), paths, opts)
	require.NoError(t, err)
	require.False(t, first.Files[0].Cached)

	second, err := CheckFiles(context.Background(), paths, opts)
	require.NoError(t, err)
	for i := range paths {
		require.True(t, second.Files[i].Cached, paths[i])
		require.Equal(t, first.Files[i].OK, second.Files[i].OK)
		require.Equal(t, first.Files[i].Stats, second.Files[i].Stats)
		require.Equal(t, first.Files[i].Bag.Items(), second.Files[i].Bag.Items())
	}

	// другой предел вложенности: другой ключ
	third, err := CheckFiles(context.Background(), paths, CheckOptions{Cache: cache, MaxDepth: 8})
	require.NoError(t, err)
	require.False(t, third.Files[0].Cached)
}

func TestCheckFiles_LoadErrorPointsAtPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.il")

	res, err := CheckFiles(context.Background(), []string{missing}, CheckOptions{})
	require.NoError(t, err)
	d := res.Files[0].Bag.Items()[0]
	require.Equal(t, diag.IOLoadFileError, d.Code)
	require.Equal(t, filepath.ToSlash(missing), res.FileSet.Get(d.Primary.File).Path)
}
