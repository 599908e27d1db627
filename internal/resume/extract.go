package resume

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// MaxUploadBytes caps resume uploads.
const MaxUploadBytes = 5 << 20

// ExtractText pulls plain text out of an uploaded resume. Supported formats
// are pdf, docx, html and txt; ext is the lowercase extension without dot.
func ExtractText(data []byte, ext string) (string, error) {
	switch ext {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDocx(data)
	case "html", "htm":
		return extractHTML(data)
	case "txt":
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("unsupported resume format %q", ext)
}

func extractPDF(data []byte) (string, error) {
	r, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	n, err := r.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("page count: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			continue
		}
		text, err := ex.ExtractText()
		if err != nil || text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return out, nil
}

var (
	wordPara = regexp.MustCompile(`</w:p>`)
	xmlTag   = regexp.MustCompile(`<[^>]+>`)
)

func extractDocx(data []byte) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer d.Close()

	// GetContent returns document.xml; paragraphs become newlines, the rest
	// of the markup is dropped.
	content := d.Editable().GetContent()
	content = wordPara.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")

	out := strings.TrimSpace(content)
	if out == "" {
		return "", fmt.Errorf("no extractable text in docx")
	}
	return out, nil
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style").Remove()

	var lines []string
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		if t := strings.TrimSpace(doc.Text()); t != "" {
			return t, nil
		}
		return "", fmt.Errorf("no extractable text in html")
	}
	return strings.Join(lines, "\n"), nil
}
