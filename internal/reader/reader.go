// Package reader loads a whole dataset through a source.Source in fixed size
// windows while a companion goroutine shows the elapsed read time.
package reader

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"zctadb/internal/config"
	"zctadb/internal/console"
	"zctadb/internal/source"
	"zctadb/pkg/domain"
	"zctadb/pkg/logger"
	"zctadb/pkg/serrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure chunked reads.
type Options struct {
	// Window is the number of rows requested per ReadChunk call.
	Window int
	// TimerInterval is how often the elapsed time display is refreshed.
	TimerInterval time.Duration
	// Output receives the read statistics display. Nil disables it.
	Output io.Writer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, output io.Writer) Options {
	return Options{
		Window:        cfg.Source.Window,
		TimerInterval: cfg.Source.TimerInterval,
		Output:        output,
	}
}

// Opener opens the dataset stored at path.
type Opener func(path string) (source.Source, error)

// Reader accumulates every feature of a source into a FeatureCollection.
type Reader struct {
	options Options
	open    Opener
	now     func() time.Time
}

// New creates a Reader. A nil opener uses source.Open.
func New(open Opener, options Options) *Reader {
	if open == nil {
		open = source.Open
	}
	if options.Window <= 0 {
		options.Window = 1000
	}
	if options.TimerInterval <= 0 {
		options.TimerInterval = 10 * time.Millisecond
	}

	return &Reader{
		options: options,
		open:    open,
		now:     time.Now,
	}
}

// Read loads all features of path in arrival order. It fails with
// serrors.ErrSourceUnavailable when the source cannot be opened and with
// serrors.ErrSourceRead when a chunk fails; no partial dataset is returned in
// either case.
func (r *Reader) Read(ctx context.Context, path string) (domain.FeatureCollection, error) {
	src, err := r.open(path)
	if err != nil {
		if serrors.KindOf(err) == nil {
			err = serrors.Wrap(serrors.ErrSourceUnavailable, err, "could not open %s", path)
		}

		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn(ctx, "could not close source", zap.String("path", path), zap.Error(err))
		}
	}()

	var (
		reading  atomic.Bool
		rows     atomic.Int64
		features domain.FeatureCollection
	)
	reading.Store(true)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer reading.Store(false)

		for offset := 0; ; offset += r.options.Window {
			chunk, err := src.ReadChunk(gctx, offset, r.options.Window)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
					return err
				}
				if serrors.KindOf(err) == nil {
					err = serrors.Wrap(serrors.ErrSourceRead, err, "could not read rows %d-%d of %s",
						offset, offset+r.options.Window, path)
				}

				return err
			}
			if len(chunk) == 0 {
				return nil
			}

			features = append(features, chunk...)
			rows.Add(int64(len(chunk)))
			logger.Debug(ctx, "read chunk", zap.Int("offset", offset), zap.Int("rows", len(chunk)))
		}
	})
	g.Go(func() error {
		r.display(&reading, &rows, filepath.Base(path))

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return features, nil
}

// display shows the read statistics until reading turns false. It never
// touches the data being read.
func (r *Reader) display(reading *atomic.Bool, rows *atomic.Int64, name string) {
	var p *console.Printer
	if r.options.Output != nil {
		p = console.New(r.options.Output)
	}

	start := r.now()
	p.Active("Shape File:", name)
	p.Active("Read Start:", console.Clock(start))

	timer := console.Seconds(0)
	p.Begin("Read Timer:", timer)

	ticker := time.NewTicker(r.options.TimerInterval)
	defer ticker.Stop()
	for reading.Load() {
		<-ticker.C
		next := console.Seconds(r.now().Sub(start))
		p.Redraw(timer, next)
		timer = next
	}
	p.End()

	p.Done("Read End:", console.Clock(r.now()))
	p.Done("Total Rows:", strconv.FormatInt(rows.Load(), 10))
}
