package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"reviewhub/config"
)

// ExtractorService turns an uploaded document into abstract text. With a
// remote extractor URL configured it proxies the file to that service;
// otherwise it extracts locally from the PDF bytes. Text files pass through
// untouched apart from the cleanup pass.
type ExtractorService struct {
	url    string
	client *http.Client
}

func NewExtractorService(cfg *config.Config) *ExtractorService {
	return &ExtractorService{
		url:    cfg.Extractor.URL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type extractResponse struct {
	Success    bool   `json:"success"`
	Text       string `json:"text"`
	Error      string `json:"error"`
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
}

// ExtractText extracts and cleans the abstract text of an uploaded file.
func (s *ExtractorService) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".txt" {
		return CleanExtractedText(string(data)), nil
	}

	var raw string
	var err error
	if s.url != "" {
		raw, err = s.extractRemote(ctx, filename, data)
	} else {
		raw, err = extractLocalPDF(data)
	}
	if err != nil {
		return "", fmt.Errorf("PDF extraction failed: %w", err)
	}

	cleaned := CleanExtractedText(raw)
	if strings.TrimSpace(cleaned) == "" {
		return "", errors.New("no abstract found in PDF")
	}
	return cleaned, nil
}

// extractRemote posts the file to the extraction service and decodes its
// {success, text, error} response.
func (s *ExtractorService) extractRemote(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out extractResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("extractor returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to parse extractor response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", fmt.Errorf("extractor returned status %d", resp.StatusCode)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", errors.New("no abstract found in PDF")
	}
	return out.Text, nil
}

// extractLocalPDF pulls plain text out of the PDF bytes and narrows it to
// the abstract when an "Abstract" marker is present, capped at 400 words.
func extractLocalPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", err
	}

	return sniffAbstract(buf.String()), nil
}

func sniffAbstract(text string) string {
	idx := strings.Index(strings.ToLower(text), "abstract")
	if idx < 0 {
		return text
	}
	words := strings.Fields(text[idx:])
	if len(words) > 400 {
		words = words[:400]
	}
	return strings.Join(words, " ")
}

// Cleanup regexes for extracted PDF text: collapsed whitespace, rejoined
// hyphenated line breaks, punctuation spacing, and repaired sentence
// boundaries where the extractor glued sentences together.
var (
	whitespaceRe      = regexp.MustCompile(`\s+`)
	hyphenBreakRe     = regexp.MustCompile(`-\s+`)
	spaceBeforeStopRe = regexp.MustCompile(`\s+\.`)
	spaceBeforeCommaRe = regexp.MustCompile(`\s+,`)
	spaceBeforeSemiRe = regexp.MustCompile(`\s+;`)
	spaceBeforeColonRe = regexp.MustCompile(`\s+:`)
	spaceBeforeCloseRe = regexp.MustCompile(`\s+\)`)
	spaceAfterOpenRe  = regexp.MustCompile(`\(\s+`)
	spaceBeforeOpenRe = regexp.MustCompile(`\s+\(`)
	gluedSentenceRe   = regexp.MustCompile(`([a-z])\.([A-Z])`)
	missingSpaceRe    = regexp.MustCompile(`([.!?])([A-Z])`)
)

// CleanExtractedText normalizes extracted document text before it is used
// as an abstract.
func CleanExtractedText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	cleaned = hyphenBreakRe.ReplaceAllString(cleaned, "")
	cleaned = spaceBeforeStopRe.ReplaceAllString(cleaned, ".")
	cleaned = spaceBeforeCommaRe.ReplaceAllString(cleaned, ",")
	cleaned = spaceBeforeSemiRe.ReplaceAllString(cleaned, ";")
	cleaned = spaceBeforeColonRe.ReplaceAllString(cleaned, ":")
	cleaned = spaceBeforeCloseRe.ReplaceAllString(cleaned, ")")
	cleaned = spaceAfterOpenRe.ReplaceAllString(cleaned, "(")
	cleaned = spaceBeforeOpenRe.ReplaceAllString(cleaned, "(")

	cleaned = gluedSentenceRe.ReplaceAllString(cleaned, "${1}. ${2}")
	cleaned = missingSpaceRe.ReplaceAllString(cleaned, "${1} ${2}")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))

	return cleaned
}
