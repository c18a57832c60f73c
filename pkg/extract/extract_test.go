package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownExtensionRejected(t *testing.T) {
	r := Default()

	assert.False(t, r.Supported("report.exe"))
	_, err := r.Extract("report.exe", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRegistry_ExtensionCaseInsensitive(t *testing.T) {
	r := Default()

	text, err := r.Extract("NOTES.TXT", []byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestText_PassesUTF8Through(t *testing.T) {
	text, err := Text{}.Extract([]byte("レッスン案内\n料金表"))

	require.NoError(t, err)
	assert.Equal(t, "レッスン案内\n料金表", text)
}

func TestText_InvalidUTF8IsExtractionError(t *testing.T) {
	_, err := Default().Extract("broken.txt", []byte{0xff, 0xfe, 0xfd})

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestHTML_ExtractsMainContentAndSkipsChrome(t *testing.T) {
	page := `<html><head><title>リボンスクール</title></head><body>
<nav>メニュー</nav>
<main><h1>レッスン案内</h1><p>体験レッスンは無料です。</p><ul><li>平日 10:00-18:00</li></ul></main>
<script>var x=1;</script>
</body></html>`

	text, title, err := FromHTML([]byte(page))

	require.NoError(t, err)
	assert.Equal(t, "リボンスクール", title)
	assert.Contains(t, text, "レッスン案内")
	assert.Contains(t, text, "体験レッスンは無料です。")
	assert.Contains(t, text, "平日 10:00-18:00")
	assert.NotContains(t, text, "var x=1;")
}

func TestHTML_NoMainFallsBackToWholeDocument(t *testing.T) {
	page := `<html><body><p>本文だけのページ</p></body></html>`

	text, _, err := FromHTML([]byte(page))

	require.NoError(t, err)
	assert.Contains(t, text, "本文だけのページ")
}

func TestExcel_CorruptWorkbookIsExtractionError(t *testing.T) {
	_, err := Default().Extract("rates.xlsx", []byte("this is not a zip archive"))

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestPDF_CorruptFileIsExtractionError(t *testing.T) {
	_, err := Default().Extract("guide.pdf", []byte("%PDF-1.4 truncated"))

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestRegistry_CustomExtractorWins(t *testing.T) {
	r := NewRegistry(Text{})

	assert.True(t, r.Supported("a.md"))
	assert.False(t, r.Supported("a.pdf"))
	text, err := r.Extract("a.md", []byte(strings.Repeat("x", 3)))
	require.NoError(t, err)
	assert.Equal(t, "xxx", text)
}
