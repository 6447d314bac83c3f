// resume/extractor_test.go
package resume_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjunvx/skillfolio/resume"
)

// buildDocx assembles a minimal OOXML container with the given paragraphs,
// enough for the extractor to find word/document.xml and strip its markup.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	text, err := resume.ExtractText([]byte("Software Engineer at Acme"), "text/plain")
	require.NoError(t, err)
	require.Equal(t, "Software Engineer at Acme", text)
}

func TestExtractTextDocx(t *testing.T) {
	data := buildDocx(t, "Software Engineer at Acme", "Skills: Go, PostgreSQL")

	text, err := resume.ExtractText(data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.NoError(t, err)
	require.Contains(t, text, "Software Engineer at Acme")
	require.Contains(t, text, "Skills: Go, PostgreSQL")
	require.NotContains(t, text, "<w:p>")
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	// A valid zip that is not a word-processing document.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("nothing here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = resume.ExtractText(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	require.Error(t, err)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := resume.ExtractText([]byte("definitely not a pdf"), "application/pdf")
	require.Error(t, err)
}

// Unsupported media types must always fail, never silently return empty text.
func TestExtractTextUnsupportedTypes(t *testing.T) {
	for _, mediaType := range []string{"image/png", "image/jpeg", "application/json", "video/mp4", ""} {
		t.Run(mediaType, func(t *testing.T) {
			text, err := resume.ExtractText([]byte{0x89, 0x50, 0x4e, 0x47}, mediaType)
			require.Error(t, err)
			require.ErrorIs(t, err, resume.ErrUnsupportedFileType)
			require.Empty(t, text)
		})
	}
}
