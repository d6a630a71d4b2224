// Package etl runs the extract, map, and load stages over the district crop
// statistics file.
package etl

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"agrietl/internal/datasource"
	"agrietl/internal/metrics"
	csvparser "agrietl/internal/parser/csv"
	"agrietl/internal/records"
	"agrietl/internal/schema"
)

// Dataset is the decoded, schema-mapped content of one source file.
type Dataset struct {
	Records  []records.Record
	Columns  schema.ColumnReport
	Rejected []records.DecodeError

	// Fingerprint is the xxh3 digest of the raw source bytes.
	Fingerprint uint64
}

// Extract reads src into a Table. A missing file surfaces as an error that
// still satisfies errors.Is(err, os.ErrNotExist).
func Extract(ctx context.Context, job string, src datasource.Source, opt csvparser.Options) (*csvparser.Table, error) {
	start := time.Now()
	t, err := extract(ctx, src, opt)
	metrics.RecordStep(job, "extract", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	metrics.RecordRow(job, "", metrics.RowsRead, int64(t.Len()))
	log.WithFields(log.Fields{
		"rows":        t.Len(),
		"columns":     len(t.Header),
		"ragged":      t.Ragged,
		"fingerprint": fmt.Sprintf("%016x", t.Fingerprint),
	}).Info("source loaded")
	return t, nil
}

func extract(ctx context.Context, src datasource.Source, opt csvparser.Options) (*csvparser.Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	defer rc.Close()

	t, err := csvparser.NewParser(opt).Parse(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	return t, nil
}

// Prepare maps t onto the canonical schema and decodes it into Records.
// Column differences are logged; under schema.PolicyStrict they are fatal.
// Rows with undecodable identifiers are logged and returned in
// Dataset.Rejected.
func Prepare(job string, t *csvparser.Table, policy schema.ColumnPolicy) (*Dataset, error) {
	mapped, rep, err := schema.Map(t, policy)
	logColumnReport(rep)
	if err != nil {
		return nil, err
	}

	recs, bad, err := records.Decode(mapped)
	if err != nil {
		return nil, err
	}
	for i, de := range bad {
		if i == 20 {
			log.Warnf("... %d more rejected rows not shown", len(bad)-i)
			break
		}
		log.WithField("line", de.Line).WithError(de.Err).Warn("row rejected")
	}
	metrics.RecordRow(job, "", metrics.RowsRejected, int64(len(bad)))

	return &Dataset{
		Records:     recs,
		Columns:     rep,
		Rejected:    bad,
		Fingerprint: t.Fingerprint,
	}, nil
}

func logColumnReport(rep schema.ColumnReport) {
	if rep.OK() {
		log.Debug("source columns match the canonical schema")
		return
	}
	if len(rep.Missing) > 0 {
		log.WithField("columns", rep.Missing).Warn("columns missing from source; they load as zero")
	}
	if len(rep.Extra) > 0 {
		log.WithField("columns", rep.Extra).Warn("unexpected columns in source; ignored")
	}
}
