package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanExtractedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses whitespace", "a  b\n\tc", "a b c"},
		{"rejoins hyphen breaks", "The sys-\n tem works", "The system works"},
		{"punctuation spacing", "works . Also , yes ; see : ( here )", "works. Also, yes; see:(here)"},
		{"glued sentences", "model works.It helps", "model works. It helps"},
		{"missing space after stop", "Done!Next step", "Done! Next step"},
		{
			"combined extractor artifacts",
			"The sys-\n tem works .It helps",
			"The system works. It helps",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanExtractedText(tt.in))
		})
	}
}

func TestSniffAbstract(t *testing.T) {
	text := "Title page noise. ABSTRACT We study a problem. Introduction follows."
	got := sniffAbstract(text)
	assert.True(t, strings.HasPrefix(got, "ABSTRACT We study"))

	// No marker: the full text comes back untouched.
	assert.Equal(t, "just body text", sniffAbstract("just body text"))

	// Long documents are capped at 400 words past the marker.
	long := "abstract " + strings.Repeat("word ", 600)
	got = sniffAbstract(long)
	assert.Len(t, strings.Fields(got), 400)
}

func TestExtractTextPassesThroughTxt(t *testing.T) {
	s := &ExtractorService{client: http.DefaultClient}
	got, err := s.ExtractText(context.Background(), "notes.TXT", []byte("Plain   text  works.Here"))
	require.NoError(t, err)
	assert.Equal(t, "Plain text works. Here", got)
}

func TestExtractRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "paper.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"text":"We present a  method .It scales.","characters":33,"words":7}`))
	}))
	defer srv.Close()

	s := &ExtractorService{url: srv.URL, client: srv.Client()}
	got, err := s.ExtractText(context.Background(), "paper.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "We present a method. It scales.", got)
}

func TestExtractRemoteReportsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"error":"encrypted PDF not supported"}`))
	}))
	defer srv.Close()

	s := &ExtractorService{url: srv.URL, client: srv.Client()}
	_, err := s.ExtractText(context.Background(), "paper.pdf", []byte("%PDF-1.4 fake"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encrypted PDF not supported")
}

func TestExtractRemoteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	s := &ExtractorService{url: srv.URL, client: srv.Client()}
	_, err := s.ExtractText(context.Background(), "paper.pdf", []byte("%PDF-1.4 fake"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse extractor response")
}

func TestExtractRemoteEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"text":"   "}`))
	}))
	defer srv.Close()

	s := &ExtractorService{url: srv.URL, client: srv.Client()}
	_, err := s.ExtractText(context.Background(), "paper.pdf", []byte("%PDF-1.4 fake"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no abstract found in PDF")
}
