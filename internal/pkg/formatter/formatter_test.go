package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n46/deckgen/internal/entity"
)

func TestFactory_Create(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		format      entity.ExportFormat
		contentType string
		extension   string
	}{
		{entity.FormatMarkdown, "text/markdown; charset=utf-8", ".md"},
		{entity.FormatPDF, "application/pdf", ".pdf"},
		{entity.FormatPPTX, "application/vnd.openxmlformats-officedocument.presentationml.presentation", ".pptx"},
	}

	for _, c := range cases {
		f, err := factory.Create(c.format)
		require.NoError(t, err, "format %s", c.format)
		assert.Equal(t, c.contentType, f.ContentType())
		assert.Equal(t, c.extension, f.FileExtension())
	}
}

func TestFactory_Create_Unsupported(t *testing.T) {
	factory := NewFactory()

	_, err := factory.Create(entity.ExportFormat("xlsx"))
	assert.Error(t, err)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	f := NewMarkdownFormatter()

	out, err := f.Format("Quarterly Review", "Revenue is up.\n\nCosts are down.")

	require.NoError(t, err)
	assert.Equal(t, "# Quarterly Review\n\nRevenue is up.\n\nCosts are down.\n", string(out))
}

func TestPDFFormatter_Format(t *testing.T) {
	f := NewPDFFormatter()

	out, err := f.Format("Quarterly Review", "Revenue is up.")

	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSplitBlocks(t *testing.T) {
	blocks := splitBlocks("First block\nstill first\n\nSecond block\n\n\n\nThird")

	assert.Equal(t, []string{"First block\nstill first", "Second block", "Third"}, blocks)
}
