package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"agrietl/internal/metrics"
	"agrietl/internal/records"
)

// Options controls RenderAll.
type Options struct {
	// Dir receives one PNG per figure. It is created when missing; empty
	// skips image output.
	Dir string
	// XLSX, when set, is the path of a workbook with every figure's series.
	XLSX string
	// Concurrency bounds parallel rendering; <= 0 means GOMAXPROCS.
	Concurrency int
	Job         string
}

// Result lists what RenderAll produced.
type Result struct {
	// Files holds the written image paths in catalogue order.
	Files []string
	// Skipped names figures that had no data.
	Skipped  []string
	Workbook string
}

// renderFigure is swapped in tests.
var renderFigure = Render

// RenderAll builds every chart's figures from recs and renders them under
// opt.Dir. A failing figure does not stop the others; all failures are
// returned joined.
func RenderAll(ctx context.Context, charts []Chart, recs []records.Record, opt Options) (res Result, err error) {
	start := time.Now()
	defer func() { metrics.RecordStep(opt.Job, "report", err, time.Since(start)) }()

	if opt.Dir != "" {
		if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
			return res, fmt.Errorf("charts dir: %w", err)
		}
	}

	var figs []Figure
	for _, c := range charts {
		for _, f := range c.Build(recs) {
			if f.Empty() {
				log.WithField("chart", f.Name).Warn("no data, skipping")
				res.Skipped = append(res.Skipped, f.Name)
				continue
			}
			figs = append(figs, f)
		}
	}

	images := figs
	if opt.Dir == "" {
		images = nil
	}
	limit := opt.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	var (
		g     errgroup.Group
		mu    sync.Mutex
		errs  []error
		paths = make([]string, len(images))
	)
	g.SetLimit(limit)
	for i, f := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
				mu.Unlock()
				return nil
			}
			path := filepath.Join(opt.Dir, f.Name+".png")
			t0 := time.Now()
			if err := renderFigure(f, path); err != nil {
				log.WithError(err).WithField("chart", f.Name).Error("render failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}
			log.WithFields(log.Fields{"chart": f.Name, "path": path, "took": time.Since(t0)}).Debug("chart rendered")
			paths[i] = path
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range paths {
		if p != "" {
			res.Files = append(res.Files, p)
		}
	}

	if opt.XLSX != "" {
		if werr := WriteWorkbook(figs, opt.XLSX); werr != nil {
			errs = append(errs, fmt.Errorf("workbook: %w", werr))
		} else {
			res.Workbook = opt.XLSX
		}
	}

	log.WithFields(log.Fields{
		"rendered": len(res.Files),
		"skipped":  len(res.Skipped),
		"failed":   len(errs),
	}).Info("report finished")
	return res, errors.Join(errs...)
}
