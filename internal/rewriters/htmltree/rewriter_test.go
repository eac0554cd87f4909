package htmltree

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

func collectStamps(t *testing.T, src string) ([]domain.Stamp, string) {
	t.Helper()

	var stamps []domain.Stamp
	out, err := New().Rewrite(context.Background(), []byte(src), func(stamp domain.Stamp) string {
		stamps = append(stamps, stamp)
		return "REPLACED-" + stamp.Datetime
	})
	require.NoError(t, err)
	return stamps, string(out)
}

func TestRewriter_Rewrite_FullDocument(t *testing.T) {
	src := `<!DOCTYPE html><html><head><title>Events</title></head><body>
<time datetime="2023-05-01T12:00:00Z" class="jstime" data-format="YYYY-MM-DD">placeholder</time>
</body></html>`

	stamps, out := collectStamps(t, src)

	require.Len(t, stamps, 1)
	assert.Equal(t, "2023-05-01T12:00:00Z", stamps[0].Datetime)
	assert.Equal(t, "YYYY-MM-DD", stamps[0].Format)
	assert.Contains(t, out, ">REPLACED-2023-05-01T12:00:00Z</time>")
	assert.NotContains(t, out, "placeholder")
	// Attributes survive the rewrite untouched.
	assert.Contains(t, out, `datetime="2023-05-01T12:00:00Z"`)
	assert.Contains(t, out, `data-format="YYYY-MM-DD"`)
}

func TestRewriter_Rewrite_Fragment(t *testing.T) {
	src := `<p>Starts at <time datetime="2023-05-01T12:00:00Z" class="jstime">soon</time>.</p>`

	stamps, out := collectStamps(t, src)

	require.Len(t, stamps, 1)
	assert.Empty(t, stamps[0].Format)
	assert.Contains(t, out, ">REPLACED-2023-05-01T12:00:00Z</time>")
	// Fragments are not wrapped in a document envelope.
	assert.NotContains(t, out, "<html>")
	assert.NotContains(t, out, "<body>")
}

func TestRewriter_Rewrite_DocumentOrder(t *testing.T) {
	src := `<div>
<time datetime="first" class="jstime">a</time>
<span><time datetime="second" class="jstime">b</time></span>
<time datetime="third" class="jstime">c</time>
</div>`

	stamps, _ := collectStamps(t, src)

	require.Len(t, stamps, 3)
	assert.Equal(t, "first", stamps[0].Datetime)
	assert.Equal(t, "second", stamps[1].Datetime)
	assert.Equal(t, "third", stamps[2].Datetime)
}

func TestRewriter_Rewrite_UnmarkedElementsUntouched(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "time without marker class",
			src:  `<time datetime="2023-05-01T12:00:00Z">keep me</time>`,
		},
		{
			name: "time without datetime attribute",
			src:  `<time class="jstime">keep me</time>`,
		},
		{
			name: "marker class on another tag",
			src:  `<span class="jstime" datetime="2023-05-01T12:00:00Z">keep me</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamps, out := collectStamps(t, tt.src)

			assert.Empty(t, stamps)
			assert.Contains(t, out, "keep me")
		})
	}
}

func TestRewriter_Rewrite_MultipleClasses(t *testing.T) {
	src := `<time datetime="2023-05-01T12:00:00Z" class="badge jstime highlighted">x</time>`

	stamps, _ := collectStamps(t, src)

	require.Len(t, stamps, 1)
}

func TestRewriter_Rewrite_IndependentElements(t *testing.T) {
	src := `<time datetime="2023-05-01T12:00:00Z" class="jstime">a</time>
<time datetime="2024-12-31T23:59:59Z" class="jstime">b</time>`

	out, err := New().Rewrite(context.Background(), []byte(src), func(stamp domain.Stamp) string {
		return "[" + stamp.Datetime + "]"
	})

	require.NoError(t, err)
	assert.Contains(t, string(out), "[2023-05-01T12:00:00Z]")
	assert.Contains(t, string(out), "[2024-12-31T23:59:59Z]")
}

func TestRewriter_Rewrite_Idempotent(t *testing.T) {
	src := `<time datetime="2023-05-01T12:00:00Z" class="jstime" data-format="YYYY-MM-DD">x</time>`
	fn := func(stamp domain.Stamp) string { return "formatted" }
	rewriter := New()

	first, err := rewriter.Rewrite(context.Background(), []byte(src), fn)
	require.NoError(t, err)

	// The second pass re-reads the original attribute, not the mutated text.
	second, err := rewriter.Rewrite(context.Background(), first, fn)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, 1, strings.Count(string(second), "formatted"))
}

func TestRewriter_Rewrite_NilFunc(t *testing.T) {
	_, err := New().Rewrite(context.Background(), []byte("<p></p>"), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRewriter_Rewrite_ReplacesNestedChildren(t *testing.T) {
	src := `<time datetime="2023-05-01T12:00:00Z" class="jstime"><span>old</span> text</time>`

	_, out := collectStamps(t, src)

	assert.NotContains(t, out, "<span>")
	assert.NotContains(t, out, "old")
}
