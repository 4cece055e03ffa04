// Package report turns sensor packages into summary lines.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/observability"
	"github.com/claude/ftracker/internal/training"
	"github.com/google/uuid"
)

// Report is the computed result for one package.
type Report struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	models.InfoMessage
	Text string `json:"message"`
}

// Compute dispatches a package to its workout and summarises it.
func Compute(p models.Package) (*Report, error) {
	t, err := training.ReadPackage(p.Code, p.Readings)
	if err != nil {
		observability.RecordError(err)
		return nil, err
	}
	info := training.ShowTrainingInfo(t)
	observability.RecordReport(p.Code, info.Calories)
	return &Report{
		ID:          uuid.New(),
		Code:        p.Code,
		InfoMessage: info,
		Text:        info.Message(),
	}, nil
}

// Computer produces the report for one package.
type Computer interface {
	Compute(ctx context.Context, p models.Package) (*Report, error)
}

// Local computes reports in-process.
type Local struct{}

func (Local) Compute(_ context.Context, p models.Package) (*Report, error) {
	return Compute(p)
}

// Stats tracks batch progress.
type Stats struct {
	Processed int
	Failed    int
}

// Runner writes one summary line per package, in input order.
type Runner struct {
	out       io.Writer
	log       *slog.Logger
	keepGoing bool
	computer  Computer
}

// New creates a Runner. With keepGoing set, a failing package is logged and
// skipped instead of stopping the batch.
func New(out io.Writer, log *slog.Logger, keepGoing bool) *Runner {
	return &Runner{out: out, log: log, keepGoing: keepGoing, computer: Local{}}
}

// SetComputer replaces the in-process computation, e.g. with a remote client.
func (r *Runner) SetComputer(c Computer) {
	r.computer = c
}

// Run reports every package. Nothing is written for a package that fails.
// Without keepGoing the first failure is returned immediately; otherwise all
// failures are joined and returned after the batch.
func (r *Runner) Run(ctx context.Context, pkgs []models.Package) (*Stats, error) {
	stats := &Stats{}
	log := r.log.With("run_id", uuid.NewString())
	log.Debug("report run started", "packages", len(pkgs), "keep_going", r.keepGoing)

	var errs []error
	for i, p := range pkgs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rep, err := r.computer.Compute(ctx, p)
		if err != nil {
			stats.Failed++
			err = fmt.Errorf("package %d (%s): %w", i+1, p.Code, err)
			if !r.keepGoing {
				return stats, err
			}
			log.Warn("skipping package", "index", i+1, "code", p.Code, "error", err)
			errs = append(errs, err)
			continue
		}
		if _, err := fmt.Fprintln(r.out, rep.Text); err != nil {
			return stats, fmt.Errorf("writing report %d: %w", i+1, err)
		}
		stats.Processed++
	}

	log.Debug("report run finished", "processed", stats.Processed, "failed", stats.Failed)
	return stats, errors.Join(errs...)
}
