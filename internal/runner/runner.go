// Package runner orchestrates a validation run over discovered documents:
// parsing in parallel, then evaluating rules in deterministic order against
// the shared registry and collector.
package runner

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leyware/tenetlint/internal/discovery"
	"github.com/leyware/tenetlint/internal/frontmatter"
	"github.com/leyware/tenetlint/internal/report"
	"github.com/leyware/tenetlint/internal/rules"
)

// Runner validates a batch of documents. Collector and Registry are shared
// mutable state for the run; everything else is read-only input.
type Runner struct {
	ExpectedVersion string
	KnownTenetIDs   map[string]bool
	Workers         int // 0 means GOMAXPROCS
	Collector       *report.Collector
	Registry        *rules.IDRegistry
}

// Run parses every source in parallel and then evaluates rules file by file
// in sorted path order. The sequential rule pass keeps duplicate-id ownership
// deterministic: the lexicographically first file claiming an id owns it no
// matter how many workers parsed the batch. Per-file failures become
// collected errors, never an abort; the returned error is non-nil only on
// context cancellation.
func (r *Runner) Run(ctx context.Context, sources []discovery.Source) error {
	if len(sources) == 0 {
		return nil
	}

	ordered := make([]discovery.Source, len(sources))
	copy(ordered, sources)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Path < ordered[j].Path })

	jobs := r.Workers
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(ordered) {
		jobs = len(ordered)
	}

	// Parsing is embarrassingly parallel: each worker writes only its own
	// slot, so no locking is needed here.
	docs := make([]frontmatter.Document, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range ordered {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			docs[i] = frontmatter.Parse(src.FrontMatter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	engine := &rules.Engine{
		ExpectedVersion: r.ExpectedVersion,
		KnownTenetIDs:   r.KnownTenetIDs,
		Registry:        r.Registry,
		Collector:       r.Collector,
	}
	for i, src := range ordered {
		engine.Validate(src.Path, src.Kind, docs[i])
	}
	return nil
}

// FileContents builds the path-to-text map the diagnostic renderer uses for
// context snippets. The text is each document's front-matter block, matching
// the block-relative line numbers validation errors carry.
func FileContents(sources []discovery.Source) map[string]string {
	contents := make(map[string]string, len(sources))
	for _, src := range sources {
		contents[src.Path] = src.FrontMatter
	}
	return contents
}
