package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	extractor := NewExtractor(t.TempDir())

	text, err := extractor.ExtractText("resume.txt", strings.NewReader(sampleResume))
	require.NoError(t, err)
	assert.Equal(t, sampleResume, text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	extractor := NewExtractor(t.TempDir())

	_, err := extractor.ExtractText("resume.exe", strings.NewReader("binary"))
	require.Error(t, err)

	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, ".exe", typeErr.Extension)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("cv.pdf"))
	assert.True(t, IsSupported("CV.TXT"))
	assert.False(t, IsSupported("cv.exe"))
	assert.False(t, IsSupported("cv"))
}
