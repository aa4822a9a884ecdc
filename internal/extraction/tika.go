package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTikaTimeout = 60 * time.Second

// TikaDecoder extracts text from Word documents via an Apache Tika server.
type TikaDecoder struct {
	serverURL string
	client    *http.Client
}

func NewTikaDecoder(serverURL string) *TikaDecoder {
	return &TikaDecoder{
		serverURL: serverURL,
		client:    &http.Client{Timeout: defaultTikaTimeout},
	}
}

// Decode submits the document to Tika's /tika endpoint and returns the
// plain-text body. Tika detects the concrete format itself, so .doc and
// .docx both go through the same request.
func (d *TikaDecoder) Decode(ctx context.Context, data []byte) (string, error) {
	if d.serverURL == "" {
		return "", &DecodeError{
			Kind:    KindWord,
			Message: "no tika server configured for Word documents (set TIKA_URL)",
		}
	}

	url := fmt.Sprintf("%s/tika", d.serverURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Kind: KindWord, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "text/plain")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", &DecodeError{Kind: KindWord, Message: "tika request failed", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &DecodeError{Kind: KindWord, Message: "failed to read tika response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &DecodeError{
			Kind:    KindWord,
			Message: fmt.Sprintf("tika returned status %d", resp.StatusCode),
		}
	}

	return string(body), nil
}
