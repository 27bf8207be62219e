// Package collector reads input files concurrently and counts their distinct lines.
package collector

import (
	"bytes"
	"context"
	"sync"

	"go.trai.ch/strref"
	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FileStatus represents the status of an input file.
type FileStatus string

const (
	// StatusPending indicates the file is waiting to be read.
	StatusPending FileStatus = "Pending"
	// StatusRunning indicates the file is currently being read.
	StatusRunning FileStatus = "Running"
	// StatusCompleted indicates the file was read and merged.
	StatusCompleted FileStatus = "Completed"
	// StatusFailed indicates reading the file failed.
	StatusFailed FileStatus = "Failed"
)

// Collector reads files through a LineSource and merges their lines into a Tally.
type Collector struct {
	source ports.LineSource
	logger ports.Logger

	mu         sync.RWMutex
	fileStatus map[string]FileStatus
}

// New creates a new Collector.
func New(source ports.LineSource, logger ports.Logger) *Collector {
	return &Collector{
		source:     source,
		logger:     logger,
		fileStatus: make(map[string]FileStatus),
	}
}

func (c *Collector) initFileStatuses(files []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.fileStatus)
	for _, f := range files {
		c.fileStatus[f] = StatusPending
	}
}

func (c *Collector) updateStatus(path string, status FileStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileStatus[path] = status
}

// Run reads every file with at most cfg.Workers files in flight. The first
// failure cancels the remaining reads. The caller owns the returned Tally
// and must release it.
func (c *Collector) Run(ctx context.Context, files []string, cfg *domain.Config) (*Tally, error) {
	c.initFileStatuses(files)

	ignore := strref.NewMap[struct{}](len(cfg.Ignore))
	defer ignore.Clear()
	for _, s := range cfg.Ignore {
		ignore.Put(s, struct{}{})
	}

	tally := &Tally{Files: make([]domain.FileSummary, len(files))}
	var mergeMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, path := range files {
		g.Go(func() error {
			c.updateStatus(path, StatusRunning)

			local, err := c.read(ctx, path, cfg, ignore)
			if err != nil {
				c.updateStatus(path, StatusFailed)
				return err
			}

			mergeMu.Lock()
			tally.merge(local)
			tally.Files[i] = local.summary
			mergeMu.Unlock()
			local.release()

			c.updateStatus(path, StatusCompleted)
			c.logger.Info("collected " + path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		tally.Release()
		return nil, zerr.Wrap(err, "failed to collect lines")
	}
	return tally, nil
}

type partial struct {
	summary domain.FileSummary
	lines   int
	table   strref.Table
	counts  []int
}

func (p *partial) release() {
	p.table.Release()
	p.counts = nil
}

func (c *Collector) read(
	ctx context.Context,
	path string,
	cfg *domain.Config,
	ignore *strref.Map[struct{}],
) (*partial, error) {
	p := &partial{}

	summary, err := c.source.ReadLines(ctx, path, func(line []byte) error {
		if cfg.Trim {
			line = bytes.TrimSpace(line)
		}
		if cfg.SkipEmpty && len(line) == 0 {
			return nil
		}
		if _, ok := ignore.Get(strref.Bytes(line)); ok {
			return nil
		}

		p.lines++
		if i, ok := p.table.Index(strref.Bytes(line)); ok {
			p.counts[i]++
			return nil
		}
		p.table.Add(strref.Bytes(bytes.Clone(line)))
		p.counts = append(p.counts, 1)
		return nil
	})
	if err != nil {
		p.release()
		return nil, err
	}

	p.summary = summary
	return p, nil
}
