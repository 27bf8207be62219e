// Package app implements the application layer for strref.
package app

import (
	"cmp"
	"context"
	"slices"

	"go.trai.ch/strref"
	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/core/ports"
	"go.trai.ch/strref/internal/engine/collector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.InputResolver
	collector    *collector.Collector
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.InputResolver,
	coll *collector.Collector,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		collector:    coll,
		logger:       logger,
	}
}

// Stats collects the lines of the given inputs and summarizes them.
// The caller must release the returned report.
func (a *App) Stats(ctx context.Context, configPath string, inputs []string) (*domain.Report, error) {
	// 1. Validate inputs
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	defer cfg.Release()

	// 3. Resolve the inputs to files
	files, err := a.resolver.ResolveInputs(inputs, cfg.Exclude)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve inputs")
	}
	if len(files) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoInputs, "inputs resolved to no files"), "inputs", len(inputs))
	}

	// 4. Collect
	tally, err := a.collector.Run(ctx, files, cfg)
	if err != nil {
		return nil, err
	}
	defer tally.Release()

	return buildReport(tally, cfg.Top), nil
}

func buildReport(tally *collector.Tally, top int) *domain.Report {
	report := &domain.Report{
		Files:    tally.Files,
		Lines:    tally.Lines,
		Distinct: tally.Distinct(),
		Kinds: map[string]int{
			strref.KindSmall.String():  0,
			strref.KindShared.String(): 0,
			strref.KindStatic.String(): 0,
		},
	}

	entries := make([]domain.Entry, 0, tally.Distinct())
	for line, count := range tally.All() {
		report.Kinds[line.Kind().String()]++
		switch line.Kind() {
		case strref.KindSmall:
			report.InlineBytes += line.Len()
		case strref.KindShared:
			report.SharedBytes += line.Len()
		}
		entries = append(entries, domain.Entry{Line: line, Count: count})
	}

	slices.SortFunc(entries, func(a, b domain.Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strref.Compare(a.Line, b.Line)
	})

	// Entries are borrowed from the tally until cloned.
	entries = entries[:min(top, len(entries))]
	for i := range entries {
		entries[i].Line = entries[i].Line.Clone()
	}
	report.Top = entries

	return report
}
