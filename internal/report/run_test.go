package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrietl/internal/records"
)

func stubRender(t *testing.T, fn func(Figure, string) error) {
	t.Helper()
	prev := renderFigure
	renderFigure = fn
	t.Cleanup(func() { renderFigure = prev })
}

func TestRenderAll_WritesEveryFigure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	xlsx := filepath.Join(t.TempDir(), "report.xlsx")

	res, err := RenderAll(context.Background(), Catalogue(), sampleRecords(), Options{Dir: dir, XLSX: xlsx, Concurrency: 4, Job: "test"})
	require.NoError(t, err)
	assert.Len(t, res.Files, 15)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, xlsx, res.Workbook)
	assert.Equal(t, filepath.Join(dir, "rice_top_states.png"), res.Files[0])
	for _, p := range res.Files {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestRenderAll_FailureDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	stubRender(t, func(f Figure, _ string) error {
		calls.Add(1)
		if f.Name == "wheat_share" || f.Name == "sugarcane_trend" {
			return boom
		}
		return nil
	})

	res, err := RenderAll(context.Background(), Catalogue(), sampleRecords(), Options{Dir: t.TempDir(), Concurrency: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(15), calls.Load())
	assert.Len(t, res.Files, 13)
}

func TestRenderAll_SkipsEmptyFigures(t *testing.T) {
	stubRender(t, func(Figure, string) error { return nil })
	empty := Chart{Name: "empty", Build: func([]records.Record) []Figure {
		return []Figure{{Name: "empty", Kind: KindBar, Series: []Series{{Name: "none"}}}}
	}}
	res, err := RenderAll(context.Background(), []Chart{empty}, sampleRecords(), Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, res.Skipped)
	assert.Empty(t, res.Files)
}

func TestRenderAll_Canceled(t *testing.T) {
	var calls atomic.Int32
	stubRender(t, func(Figure, string) error {
		calls.Add(1)
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := RenderAll(ctx, Catalogue(), sampleRecords(), Options{Dir: t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Files)
	assert.Zero(t, calls.Load())
}

func TestRenderAll_WorkbookOnly(t *testing.T) {
	stubRender(t, func(Figure, string) error {
		return errors.New("no images expected")
	})
	xlsx := filepath.Join(t.TempDir(), "only.xlsx")

	res, err := RenderAll(context.Background(), Catalogue(), sampleRecords(), Options{XLSX: xlsx})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, xlsx, res.Workbook)
	_, err = os.Stat(xlsx)
	assert.NoError(t, err)
}

func TestRenderAll_NoWheatSkipsSharePie(t *testing.T) {
	recs := sampleRecords()
	for i := range recs {
		recs[i].WheatArea, recs[i].WheatProduction, recs[i].WheatYield = 0, 0, 0
	}

	res, err := RenderAll(context.Background(), Catalogue(), recs, Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, []string{"wheat_share"}, res.Skipped)
	assert.Len(t, res.Files, 14)
}
