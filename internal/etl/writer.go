package etl

import (
	"context"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"agrietl/internal/metrics"
	"agrietl/internal/records"
	"agrietl/internal/schema"
	"agrietl/internal/storage"
)

// Load stage names, in execution order.
const (
	StageStates    = "states"
	StageDistricts = "districts"
	StageCrops     = "crops"
	StageYears     = "years"
	StageFacts     = "facts"
)

// maxLoggedFailures caps per-stage failure log lines; every failure is still
// kept in BatchResult.Failures.
const maxLoggedFailures = 20

// pendingRow is one row queued for InsertIgnore.
type pendingRow struct {
	key    string
	values []any
}

// stagePlan is the full set of rows one stage will attempt.
type stagePlan struct {
	name    string
	table   string
	columns []string
	keys    []string
	rows    []pendingRow
}

// Writer loads Records into the master and fact tables through a
// storage.Repository. It never updates or deletes: existing keys are skipped.
type Writer struct {
	repo storage.Repository
	job  string
}

// NewWriter returns a Writer over repo. job labels metrics.
func NewWriter(repo storage.Repository, job string) *Writer {
	return &Writer{repo: repo, job: job}
}

// Load writes states, districts, crops, years, then facts, each stage in its
// own transaction. A row that fails is recorded in the stage's BatchResult
// and the stage carries on and commits. The returned error is reserved for
// conditions that stop the load: a transaction that cannot begin or commit,
// or a canceled context. The summary always holds the stages that ran.
func (w *Writer) Load(ctx context.Context, recs []records.Record) (LoadSummary, error) {
	var sum LoadSummary
	for _, plan := range planStages(recs) {
		res, err := w.runStage(ctx, plan)
		sum.Stages = append(sum.Stages, res)
		if err != nil {
			return sum, fmt.Errorf("stage %s: %w", plan.name, err)
		}
	}
	return sum, nil
}

func (w *Writer) runStage(ctx context.Context, p stagePlan) (res BatchResult, err error) {
	start := time.Now()
	res = BatchResult{Stage: p.name, Table: p.table}
	lg := log.WithFields(log.Fields{"stage": p.name, "table": p.table})

	defer func() {
		metrics.RecordStep(w.job, "load_"+p.name, err, time.Since(start))
		metrics.RecordRow(w.job, p.table, metrics.RowsInserted, int64(res.Inserted))
		metrics.RecordRow(w.job, p.table, metrics.RowsIgnored, int64(res.Ignored))
		metrics.RecordRow(w.job, p.table, metrics.RowsFailed, int64(len(res.Failures)))
	}()

	tx, err := w.repo.Begin(ctx)
	if err != nil {
		return res, err
	}

	for _, row := range p.rows {
		if err := ctx.Err(); err != nil {
			_ = tx.Rollback(context.Background())
			return res, err
		}
		res.Attempted++
		inserted, ierr := tx.InsertIgnore(ctx, p.table, p.columns, p.keys, row.values)
		switch {
		case ierr != nil:
			res.Failures = append(res.Failures, RowFailure{Key: row.key, Err: ierr})
			if len(res.Failures) <= maxLoggedFailures {
				lg.WithField("key", row.key).WithError(ierr).Error("row insert failed")
			}
		case inserted:
			res.Inserted++
		default:
			res.Ignored++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(context.Background())
		return res, err
	}

	lg.WithFields(log.Fields{
		"attempted": res.Attempted,
		"inserted":  res.Inserted,
		"ignored":   res.Ignored,
		"failed":    len(res.Failures),
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Info("stage committed")
	return res, nil
}

// planStages derives the rows of every stage from recs, in load order.
func planStages(recs []records.Record) []stagePlan {
	return []stagePlan{
		planStates(recs),
		planDistricts(recs),
		planCrops(),
		planYears(recs),
		planFacts(recs),
	}
}

// planStates keeps one row per state code, sorted by code. When a code
// appears with different names the first occurrence wins.
func planStates(recs []records.Record) stagePlan {
	names := make(map[int64]string)
	for _, r := range recs {
		code := int64(r.StateCode)
		name := normalizeName(r.StateName)
		if prev, ok := names[code]; ok {
			if prev != name {
				log.WithFields(log.Fields{"state_code": code, "kept": prev, "dropped": name}).
					Debug("state code has conflicting names")
			}
			continue
		}
		names[code] = name
	}

	codes := sortedKeys(names)
	p := stagePlan{
		name:    StageStates,
		table:   schema.TableStates,
		columns: []string{schema.ColStateCode, schema.ColStateName},
		keys:    []string{schema.ColStateCode},
		rows:    make([]pendingRow, 0, len(codes)),
	}
	for _, c := range codes {
		p.rows = append(p.rows, pendingRow{
			key:    fmt.Sprintf("state_code=%d", c),
			values: []any{c, names[c]},
		})
	}
	return p
}

type district struct {
	name  string
	state int64
}

// planDistricts keeps one row per district code, sorted by code, first
// occurrence wins.
func planDistricts(recs []records.Record) stagePlan {
	ds := make(map[int64]district)
	for _, r := range recs {
		code := int64(r.DistCode)
		if _, ok := ds[code]; ok {
			continue
		}
		ds[code] = district{name: normalizeName(r.DistName), state: int64(r.StateCode)}
	}

	codes := sortedKeys(ds)
	p := stagePlan{
		name:    StageDistricts,
		table:   schema.TableDistricts,
		columns: []string{schema.ColDistCode, schema.ColDistName, schema.ColStateCode},
		keys:    []string{schema.ColDistCode},
		rows:    make([]pendingRow, 0, len(codes)),
	}
	for _, c := range codes {
		d := ds[c]
		p.rows = append(p.rows, pendingRow{
			key:    fmt.Sprintf("dist_code=%d", c),
			values: []any{c, d.name, d.state},
		})
	}
	return p
}

// planCrops derives crop names from the fact column set, which is fixed, so
// the stage does not depend on the records at all.
func planCrops() stagePlan {
	crops := schema.DeriveCrops(schema.FactColumns)
	p := stagePlan{
		name:    StageCrops,
		table:   schema.TableCrops,
		columns: []string{schema.ColCropName},
		keys:    []string{schema.ColCropName},
		rows:    make([]pendingRow, 0, len(crops)),
	}
	for _, c := range crops {
		p.rows = append(p.rows, pendingRow{key: "crop_name=" + c, values: []any{c}})
	}
	return p
}

func planYears(recs []records.Record) stagePlan {
	set := make(map[int64]struct{})
	for _, r := range recs {
		set[int64(r.Year)] = struct{}{}
	}
	years := sortedKeys(set)
	p := stagePlan{
		name:    StageYears,
		table:   schema.TableYears,
		columns: []string{schema.ColYear},
		keys:    []string{schema.ColYear},
		rows:    make([]pendingRow, 0, len(years)),
	}
	for _, y := range years {
		p.rows = append(p.rows, pendingRow{key: fmt.Sprintf("year=%d", y), values: []any{y}})
	}
	return p
}

// planFacts emits one row per record in source order. Duplicate
// (dist_code, year) pairs are left to the store to ignore.
func planFacts(recs []records.Record) stagePlan {
	p := stagePlan{
		name:    StageFacts,
		table:   schema.TableFacts,
		columns: schema.FactColumns,
		keys:    schema.FactKeyColumns,
		rows:    make([]pendingRow, 0, len(recs)),
	}
	for _, r := range recs {
		p.rows = append(p.rows, pendingRow{
			key:    fmt.Sprintf("dist_code=%d year=%d", r.DistCode, r.Year),
			values: r.FactValues(),
		})
	}
	return p
}

func sortedKeys[V any](m map[int64]V) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
