package runner

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leyware/tenetlint/internal/discovery"
	"github.com/leyware/tenetlint/internal/report"
	"github.com/leyware/tenetlint/internal/rules"
)

func newTestRunner() (*Runner, *report.Collector) {
	collector := report.NewCollector()
	r := &Runner{
		ExpectedVersion: "1.0.0",
		KnownTenetIDs:   map[string]bool{"y": true},
		Collector:       collector,
		Registry:        rules.NewIDRegistry(),
	}
	return r, collector
}

func tenetSource(path, id string) discovery.Source {
	return discovery.Source{
		Path:        path,
		Kind:        rules.KindTenet,
		FrontMatter: fmt.Sprintf("id: %s\nlast_modified: '2025-05-10'\nversion: '1.0.0'", id),
	}
}

func TestRunner_CleanBatch(t *testing.T) {
	t.Parallel()

	r, collector := newTestRunner()
	sources := []discovery.Source{
		tenetSource("tenets/a.md", "a"),
		tenetSource("tenets/b.md", "b"),
		{
			Path:        "bindings/x.md",
			Kind:        rules.KindBinding,
			FrontMatter: "id: x\nlast_modified: '2025-05-10'\nderived_from: y\nenforced_by: 'z'\nversion: '1.0.0'",
		},
	}

	require.NoError(t, r.Run(context.Background(), sources))
	assert.Zero(t, collector.Count(), "errors: %v", collector.Errors())
}

func TestRunner_EmptyBatch(t *testing.T) {
	t.Parallel()

	r, collector := newTestRunner()
	require.NoError(t, r.Run(context.Background(), nil))
	assert.Zero(t, collector.Count())
}

func TestRunner_DuplicateOwnerIsDeterministic(t *testing.T) {
	t.Parallel()

	// The same batch in any input order, with any worker count, must report
	// the lexicographically later file as the duplicate.
	inputs := [][]discovery.Source{
		{tenetSource("tenets/a.md", "shared-id"), tenetSource("tenets/b.md", "shared-id")},
		{tenetSource("tenets/b.md", "shared-id"), tenetSource("tenets/a.md", "shared-id")},
	}

	for _, workers := range []int{1, 4} {
		for i, sources := range inputs {
			sources := sources
			t.Run(fmt.Sprintf("workers=%d/order=%d", workers, i), func(t *testing.T) {
				t.Parallel()
				r, collector := newTestRunner()
				r.Workers = workers

				require.NoError(t, r.Run(context.Background(), sources))

				errs := collector.Errors()
				require.Len(t, errs, 1)
				assert.Equal(t, report.KindDuplicateID, errs[0].Kind)
				assert.Equal(t, "tenets/b.md", errs[0].File)
				assert.Contains(t, errs[0].Message, "tenets/a.md")
			})
		}
	}
}

func TestRunner_OneBadFileDoesNotAbortOthers(t *testing.T) {
	t.Parallel()

	r, collector := newTestRunner()
	sources := []discovery.Source{
		{Path: "tenets/broken.md", Kind: rules.KindTenet, FrontMatter: "id: [unclosed\n"},
		tenetSource("tenets/good.md", "good"),
		{Path: "tenets/missing.md", Kind: rules.KindTenet, FrontMatter: "last_modified: '2025-05-10'\nversion: '1.0.0'"},
	}

	require.NoError(t, r.Run(context.Background(), sources))

	files := map[string][]report.ErrorKind{}
	for _, e := range collector.Errors() {
		files[e.File] = append(files[e.File], e.Kind)
	}

	assert.Equal(t, []report.ErrorKind{report.KindYamlSyntax}, files["tenets/broken.md"])
	assert.Equal(t, []report.ErrorKind{report.KindMissingField}, files["tenets/missing.md"])
	assert.NotContains(t, files, "tenets/good.md")
}

func TestRunner_ErrorsOrderedByPath(t *testing.T) {
	t.Parallel()

	r, collector := newTestRunner()
	sources := []discovery.Source{
		{Path: "tenets/z.md", Kind: rules.KindTenet, FrontMatter: ""},
		{Path: "tenets/a.md", Kind: rules.KindTenet, FrontMatter: ""},
	}

	require.NoError(t, r.Run(context.Background(), sources))

	errs := collector.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "tenets/a.md", errs[0].File)
	assert.Equal(t, "tenets/z.md", errs[1].File)
}

func TestRunner_CancelledContext(t *testing.T) {
	t.Parallel()

	r, _ := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, []discovery.Source{tenetSource("tenets/a.md", "a")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileContents(t *testing.T) {
	t.Parallel()

	sources := []discovery.Source{
		{Path: "a.md", FrontMatter: "id: a"},
		{Path: "b.md", FrontMatter: "id: b"},
	}

	contents := FileContents(sources)
	assert.Equal(t, map[string]string{"a.md": "id: a", "b.md": "id: b"}, contents)
}
