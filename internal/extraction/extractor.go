// Package extraction converts uploaded resumes into text and derives a
// normalized candidate profile from it.
package extraction

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Extractor saves uploaded resumes and converts them to plain text.
type Extractor struct {
	uploadsDir string
}

// NewExtractor creates an Extractor that stores uploads under uploadsDir.
func NewExtractor(uploadsDir string) *Extractor {
	return &Extractor{uploadsDir: uploadsDir}
}

// ExtractText saves the uploaded file and returns its plain-text content.
// PDF and word-processor formats go through docconv; .txt is read directly.
func (e *Extractor) ExtractText(filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(e.uploadsDir, 0o755); err != nil {
		return "", &ExtractError{Filename: filename, Message: "failed to create uploads dir", Cause: err}
	}

	filePath := filepath.Join(e.uploadsDir, filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return "", &ExtractError{Filename: filename, Message: "failed to create file", Cause: err}
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, reader); err != nil {
		return "", &ExtractError{Filename: filename, Message: "failed to save file", Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return "", &ExtractError{Filename: filename, Message: "failed to convert document", Cause: err}
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", &ExtractError{Filename: filename, Message: "failed to read text file", Cause: err}
		}
		return string(content), nil
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}
}

// SupportedExtensions lists the file types ExtractText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt"}
}

// IsSupported reports whether the filename has a supported extension.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}
