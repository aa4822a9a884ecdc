// Package extraction turns uploaded resume documents into plain text.
// PDF files are decoded in-process; Word documents go through an Apache
// Tika server since their format needs a full document parser.
package extraction

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DocumentKind identifies the source document format.
type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindWord DocumentKind = "word"
)

// KindFromFilename maps a file extension to a supported document kind.
func KindFromFilename(name string) (DocumentKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx", ".doc":
		return KindWord, nil
	default:
		return "", fmt.Errorf("unsupported document type: %s", filepath.Ext(name))
	}
}

// Decoder converts raw document bytes into text.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (string, error)
}

// Extractor routes documents to the decoder for their kind and normalizes
// the decoded text.
type Extractor struct {
	decoders map[DocumentKind]Decoder
}

// NewExtractor builds an extractor with the default decoder per kind.
// tikaURL points at an Apache Tika server used for Word documents.
func NewExtractor(tikaURL string) *Extractor {
	return &Extractor{
		decoders: map[DocumentKind]Decoder{
			KindPDF:  NewFitzDecoder(),
			KindWord: NewTikaDecoder(tikaURL),
		},
	}
}

// NewExtractorWithDecoders builds an extractor from explicit decoders.
// Used by tests to substitute fakes.
func NewExtractorWithDecoders(decoders map[DocumentKind]Decoder) *Extractor {
	return &Extractor{decoders: decoders}
}

// ExtractText decodes a document and returns its trimmed text. Documents
// that decode to only whitespace are rejected with EmptyContentError.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, kind DocumentKind) (string, error) {
	decoder, ok := e.decoders[kind]
	if !ok {
		return "", &DecodeError{Kind: kind, Message: "no decoder registered"}
	}

	text, err := decoder.Decode(ctx, data)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptyContentError{Kind: kind}
	}

	log.Debug().
		Str("kind", string(kind)).
		Int("chars", len(text)).
		Msg("extracted document text")

	return text, nil
}
