package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundtrip(t *testing.T) {
	original := []byte("<h2>Top 10 Most Popular Movies</h2><pre>1. Alpha | popularity 50.0</pre>")

	compressed := CompressReport(original)
	decompressed, err := DecompressReport(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestCompressShrinksRepetitiveContent(t *testing.T) {
	original := []byte(strings.Repeat("<tr><td>movie</td></tr>", 200))

	compressed := CompressReport(original)
	assert.Less(t, len(compressed), len(original))
}

func TestDecompressInvalidData(t *testing.T) {
	_, err := DecompressReport([]byte{0xff, 0x01, 0x02})
	assert.Error(t, err)
}
