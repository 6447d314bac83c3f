// resume/extractor.go

package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

////////////////////////////////////////////////////////////////////////

// Media types accepted by ExtractText.
const (
	mimePDF    = "application/pdf"
	mimeBinary = "application/octet-stream"
	mimeDocx   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePlain  = "text/plain"
)

// ErrUnsupportedFileType is returned when the declared media type has no decoder.
var ErrUnsupportedFileType = errors.New("unsupported file type")

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

////////////////////////////////////////////////////////////////////////

// ExtractText converts an uploaded document into a plain-text string,
// dispatching on the declared media type. Extraction failure is terminal:
// there is no retry and no partial output.
func ExtractText(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case mimePDF, mimeBinary:
		return extractPDF(data)
	case mimeDocx:
		return extractDocx(data)
	case mimePlain:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mediaType)
	}
}

// extractPDF decodes the text content of every page in the document.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

// extractDocx pulls word/document.xml out of the OOXML container, converts
// paragraph and tab markers to whitespace and strips the remaining tags.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx container: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagRe.ReplaceAllString(text, " ")
	return collapseWhitespace(text), nil
}

// collapseWhitespace squeezes runs of spaces and tabs left behind by tag
// stripping, preserving line breaks.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
