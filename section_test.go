package helpchunk_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/helpchunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"###### Deep", true},
		{"#\tTabbed", true},
		{"#  padded", true},
		{"#Title", false},
		{"# ", false},
		{"#", false},
		{"", false},
		{"Title #", false},
		{" # indented", false},
		{"text", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, helpchunk.IsHeading(tt.line), "line %q", tt.line)
	}
}

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("splits at heading lines", func(t *testing.T) {
		t.Parallel()

		preamble, sections := helpchunk.SplitSections("# A\nshort\n## B\nbody")

		assert.Empty(t, preamble)
		require.Len(t, sections, 2)
		assert.Equal(t, helpchunk.Section{Heading: "# A", Body: "\nshort\n"}, sections[0])
		assert.Equal(t, helpchunk.Section{Heading: "## B", Body: "\nbody"}, sections[1])
		assert.Equal(t, 1, sections[0].Level())
		assert.Equal(t, 2, sections[1].Level())
	})

	t.Run("returns text before the first heading as preamble", func(t *testing.T) {
		t.Parallel()

		preamble, sections := helpchunk.SplitSections("intro line\n\n# A\nbody")

		assert.Equal(t, "intro line\n\n", preamble)
		require.Len(t, sections, 1)
		assert.Equal(t, "# A", sections[0].Heading)
	})

	t.Run("returns whole text as preamble without headings", func(t *testing.T) {
		t.Parallel()

		preamble, sections := helpchunk.SplitSections("just text\nmore text")

		assert.Equal(t, "just text\nmore text", preamble)
		assert.Empty(t, sections)
	})

	t.Run("handles heading on the last line", func(t *testing.T) {
		t.Parallel()

		_, sections := helpchunk.SplitSections("body\n# End")

		require.Len(t, sections, 1)
		assert.Equal(t, helpchunk.Section{Heading: "# End", Body: ""}, sections[0])
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		preamble, sections := helpchunk.SplitSections("")

		assert.Empty(t, preamble)
		assert.Empty(t, sections)
	})

	t.Run("reassembles to the original text", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"# A\nshort\n# B\n" + strings.Repeat("x", 800),
			"lead\n# A\n\n## B\n\ntext\n\n### C\n",
			"\n\n# only heading",
			"#not heading\n# heading\nx",
		}
		for _, text := range texts {
			preamble, sections := helpchunk.SplitSections(text)
			var b strings.Builder
			b.WriteString(preamble)
			for _, s := range sections {
				b.WriteString(s.Heading)
				b.WriteString(s.Body)
			}
			assert.Equal(t, text, b.String())
		}
	})
}
