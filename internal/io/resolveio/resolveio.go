package resolveio

import (
	"context"
	"errors"
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/ent/lookup"
	"github.com/antonomaz/imprimeurs/internal/ent/resolve"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/antonomaz/imprimeurs/pkg/ent/ident"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

const progressStep = 100

type resolveio struct {
	cfg  config.Config
	l    lookup.Lookuper
	excl entity.Exclusions
}

// New creates a Resolver that uses l for lookups.
func New(cfg config.Config, l lookup.Lookuper) resolve.Resolver {
	res := resolveio{
		cfg:  cfg,
		l:    l,
		excl: entity.NewExclusions(cfg.NoteExclusions...),
	}
	return &res
}

// job is an identifier and its position in the input.
type job struct {
	idx int
	uri string
}

// result keeps everything one identifier produced.
type result struct {
	idx   int
	uri   string
	recs  []entity.Record
	skips []summary.Skip
	empty bool
}

// Resolve runs lookups on JobsNum workers and writes rows in input order.
func (r *resolveio) Resolve(ctx context.Context) (*summary.Summary, error) {
	raws, err := r.readIDs()
	if err != nil {
		return nil, err
	}

	sum := &summary.Summary{}
	var jobs []job
	for _, raw := range raws {
		uri, err := ident.Parse(raw)
		if errors.Is(err, ident.ErrBlank) {
			continue
		}
		sum.Processed++
		if err != nil {
			slog.Warn("Malformed identifier", "error", err)
			sum.Skip(uri, summary.ReasonMalformed, err)
			continue
		}
		jobs = append(jobs, job{idx: len(jobs), uri: uri})
	}

	out, err := r.newOutput()
	if err != nil {
		return nil, err
	}
	defer out.close()

	slog.Info("Resolving identifiers",
		"identifiers", humanize.Comma(int64(len(jobs))),
		"jobs", r.cfg.JobsNum,
	)

	chIn := make(chan job)
	chOut := make(chan result)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for _, v := range jobs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- v:
			}
		}
		return nil
	})

	wg, wctx := errgroup.WithContext(ctx)
	for range r.cfg.JobsNum {
		wg.Go(func() error {
			return r.worker(wctx, chIn, chOut)
		})
	}
	g.Go(func() error {
		defer close(chOut)
		return wg.Wait()
	})

	g.Go(func() error {
		return r.collect(ctx, chOut, out, sum)
	})

	if err = g.Wait(); err != nil {
		slog.Error("Cannot resolve identifiers", "error", err)
		return nil, err
	}

	if err = out.finish(); err != nil {
		return nil, err
	}
	return sum, nil
}

func (r *resolveio) worker(
	ctx context.Context,
	chIn <-chan job,
	chOut chan<- result,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j, ok := <-chIn:
			if !ok {
				return nil
			}
			res, err := r.resolveOne(ctx, j)
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chOut <- res:
			}
		}
	}
}

// resolveOne looks up one identifier. Only cancellation of the context is
// returned as an error.
func (r *resolveio) resolveOne(ctx context.Context, j job) (result, error) {
	res := result{idx: j.idx, uri: j.uri}
	bs, err := r.l.Lookup(ctx, j.uri)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		slog.Warn("Cannot look up identifier", "error", err, "uri", j.uri)
		res.skips = append(res.skips, skip(j.uri, summary.ReasonLookup, err))
		return res, nil
	}
	if len(bs) == 0 {
		res.empty = true
		return res, nil
	}

	for _, grp := range entity.Group(bs) {
		rec, err := entity.Aggregate(j.uri, grp, r.excl)
		if err != nil {
			slog.Warn("Cannot aggregate bindings", "error", err, "uri", j.uri)
			res.skips = append(res.skips, skip(j.uri, summary.ReasonMissingField, err))
			continue
		}
		res.recs = append(res.recs, rec)
	}
	return res, nil
}

// collect writes results as soon as all preceding identifiers are done.
func (r *resolveio) collect(
	ctx context.Context,
	chOut <-chan result,
	out *output,
	sum *summary.Summary,
) error {
	pending := make(map[int]result)
	next := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-chOut:
			if !ok {
				return nil
			}
			pending[res.idx] = res
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := r.record(res, out, sum); err != nil {
					return err
				}
				if next%progressStep == 0 {
					slog.Info("Resolved identifiers",
						"done", humanize.Comma(int64(next)),
						"rows", humanize.Comma(int64(sum.Written)),
					)
				}
			}
		}
	}
}

func (r *resolveio) record(res result, out *output, sum *summary.Summary) error {
	sum.Skipped = append(sum.Skipped, res.skips...)
	if res.empty {
		sum.Empty++
		return nil
	}
	for _, rec := range res.recs {
		if err := out.write(rec); err != nil {
			slog.Error("Cannot write row", "error", err, "uri", res.uri)
			return err
		}
		sum.Written++
	}
	return nil
}

func skip(key, reason string, err error) summary.Skip {
	res := summary.Skip{Key: key, Reason: reason}
	if err != nil {
		res.Err = err.Error()
	}
	return res
}
