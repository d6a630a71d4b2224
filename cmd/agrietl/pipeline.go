package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"agrietl/internal/config"
	"agrietl/internal/datasource/file"
	"agrietl/internal/etl"
	csvparser "agrietl/internal/parser/csv"
	"agrietl/internal/report"
	"agrietl/internal/schema"
	"agrietl/internal/storage"
)

// errInvalidConfig is returned when validation reports an error-level issue.
var errInvalidConfig = errors.New("invalid configuration")

// runPipeline extracts and maps the source, then loads it and/or renders the
// report. The database is only opened when load is set.
func runPipeline(ctx context.Context, cfg config.Config, deps Deps, load, render bool) error {
	if err := validate(cfg, load); err != nil {
		return err
	}

	flush := setupMetrics(cfg)
	defer flush()

	start := time.Now()
	ds, err := prepare(ctx, cfg)
	if err != nil {
		return err
	}

	var rowErr error
	if load {
		sum, err := loadDataset(ctx, cfg, deps, ds)
		if err != nil {
			return err
		}
		if cfg.FailOnRowErrors {
			rowErr = sum.Err()
		}
	}

	if render {
		res, err := deps.Render(ctx, report.Catalogue(), ds.Records, report.Options{
			Dir:         cfg.ChartsDir,
			XLSX:        cfg.ReportXLSX,
			Concurrency: cfg.Concurrency,
			Job:         cfg.JobName,
		})
		for _, f := range res.Files {
			fmt.Fprintln(deps.Out, f)
		}
		if res.Workbook != "" {
			fmt.Fprintln(deps.Out, res.Workbook)
		}
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	log.WithField("took", time.Since(start).Truncate(time.Millisecond)).Info("completed")
	return rowErr
}

func prepare(ctx context.Context, cfg config.Config) (*etl.Dataset, error) {
	policy, err := schema.ParsePolicy(cfg.ColumnPolicy)
	if err != nil {
		return nil, err
	}
	src := file.NewLocal(cfg.InputCSV)
	log.WithField("path", src.Path()).Debug("reading source")
	t, err := etl.Extract(ctx, cfg.JobName, src, csvparser.Options{
		Comma:     cfg.Comma(),
		TrimSpace: cfg.TrimSpace,
	})
	if err != nil {
		return nil, err
	}
	return etl.Prepare(cfg.JobName, t, policy)
}

func loadDataset(ctx context.Context, cfg config.Config, deps Deps, ds *etl.Dataset) (etl.LoadSummary, error) {
	repo, err := deps.OpenRepo(ctx, storage.Config{Kind: cfg.DBDriver, DSN: cfg.ConnString()})
	if err != nil {
		return etl.LoadSummary{}, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	defer repo.Close()

	sum, err := etl.NewWriter(repo, cfg.JobName).Load(ctx, ds.Records)
	if err != nil {
		return sum, err
	}
	e := log.WithFields(log.Fields{"inserted": sum.Inserted(), "failed": sum.Failed()})
	if sum.Failed() > 0 {
		e.Warn("load finished; some rows were not loaded")
	} else {
		e.Info("load finished")
	}
	return sum, nil
}

// runCheck validates configuration and the source file's columns without
// opening the database. Column differences fail only under the strict policy.
func runCheck(ctx context.Context, cfg config.Config, deps Deps) error {
	if err := validate(cfg, false); err != nil {
		return err
	}
	ds, err := prepare(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Out, "rows: %d\n", len(ds.Records))
	fmt.Fprintf(deps.Out, "rejected: %d\n", len(ds.Rejected))
	fmt.Fprintf(deps.Out, "missing columns: %s\n", joinOrNone(ds.Columns.Missing))
	fmt.Fprintf(deps.Out, "extra columns: %s\n", joinOrNone(ds.Columns.Extra))
	fmt.Fprintf(deps.Out, "fingerprint: %016x\n", ds.Fingerprint)
	return nil
}

// validate logs every issue and fails on errors. Database settings are only
// checked when the command connects.
func validate(cfg config.Config, needDB bool) error {
	var issues []config.Issue
	for _, iss := range config.Validate(cfg) {
		if !needDB && strings.HasPrefix(iss.Path, "db-") {
			continue
		}
		issues = append(issues, iss)
		if iss.Severity == config.SeverityError {
			log.Error(iss.Error())
		} else {
			log.Warn(iss.Error())
		}
	}
	if config.HasErrors(issues) {
		return errInvalidConfig
	}
	return nil
}

func joinOrNone(xs []string) string {
	if len(xs) == 0 {
		return "none"
	}
	return strings.Join(xs, ", ")
}
