package docs

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// ErrNoDocuments is returned when a directory yields no readable content.
var ErrNoDocuments = errors.New("no readable documents found")

// Document is one loaded knowledge-base file.
type Document struct {
	Source string
	Text   string
}

// LoadDir reads every supported file (.txt, .md, .pdf, .html, .htm) under
// dir, non-recursively. Files that cannot be parsed are skipped with a
// warning so a single bad upload does not take the knowledge base down.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs dir %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, err := loadFile(path)
		if err != nil {
			log.Printf("[Docs] Warning: skipping %s: %v", entry.Name(), err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			log.Printf("[Docs] Warning: skipping %s: empty after extraction", entry.Name())
			continue
		}
		docs = append(docs, Document{Source: entry.Name(), Text: text})
	}

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	log.Printf("[Docs] Loaded %d documents from %s", len(docs), dir)
	return docs, nil
}

func loadFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case ".pdf":
		return extractPDF(path)
	case ".html", ".htm":
		return extractHTML(path)
	default:
		return "", fmt.Errorf("unsupported file type")
	}
}

func extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader, err := model.NewPdfReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			log.Printf("[Docs] Warning: failed to read page %d of %s: %v", i, filepath.Base(path), err)
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			continue
		}
		text, err := ex.ExtractText()
		if err != nil {
			log.Printf("[Docs] Warning: failed to extract text from page %d of %s: %v", i, filepath.Base(path), err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	pageURL, _ := url.Parse("file://" + filepath.ToSlash(path))
	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	// Readability gives up on bare fragments; fall back to stripping tags.
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, nav, footer").Remove()
	return doc.Text(), nil
}
