package extraction

import (
	"context"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzDecoder extracts text from PDF documents using MuPDF.
type FitzDecoder struct{}

func NewFitzDecoder() *FitzDecoder {
	return &FitzDecoder{}
}

// Decode opens the PDF from memory and concatenates the text of every page.
func (d *FitzDecoder) Decode(_ context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &DecodeError{Kind: KindPDF, Message: "failed to open document", Cause: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", &DecodeError{
				Kind:    KindPDF,
				Message: "failed to read page",
				Cause:   err,
			}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
