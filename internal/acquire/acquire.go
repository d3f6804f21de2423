// Package acquire turns user-supplied images (uploads or remote URLs)
// into the encoded payload the pipeline sends to the model.
package acquire

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// ErrCouldNotLoad is the single acquisition failure surfaced to the
// caller: bad file type, unreadable URL, oversized image, network
// error. The pipeline needs no finer taxonomy.
var ErrCouldNotLoad = errors.New("could not load image")

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Fetcher acquires and encodes images. proxyPrefix, when set, is
// prepended to remote URLs (URL-escaped) to route fetches through a
// CORS-relaxing proxy.
type Fetcher struct {
	httpClient  *http.Client
	proxyPrefix string
	maxBytes    int64
}

func NewFetcher(proxyPrefix string, maxBytes int64, timeout time.Duration) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		httpClient:  &http.Client{Timeout: timeout},
		proxyPrefix: proxyPrefix,
		maxBytes:    maxBytes,
	}
}

// FromUpload encodes an uploaded file. The origin is a data URL so
// the front-end can preview the exact bytes that were matched.
func (f *Fetcher) FromUpload(fh *multipart.FileHeader) (model.ImagePayload, error) {
	if fh.Size > f.maxBytes {
		return model.ImagePayload{}, fmt.Errorf("%w: file exceeds %d bytes", ErrCouldNotLoad, f.maxBytes)
	}

	file, err := fh.Open()
	if err != nil {
		return model.ImagePayload{}, fmt.Errorf("%w: %v", ErrCouldNotLoad, err)
	}
	defer file.Close()

	data, err := readCapped(file, f.maxBytes)
	if err != nil {
		return model.ImagePayload{}, err
	}

	mimeType := http.DetectContentType(data)
	if !allowedMIMETypes[mimeType] {
		return model.ImagePayload{}, fmt.Errorf("%w: unsupported file type %s", ErrCouldNotLoad, mimeType)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return model.ImagePayload{
		Base64:   encoded,
		MIMEType: mimeType,
		Origin:   "data:" + mimeType + ";base64," + encoded,
	}, nil
}

// FromURL fetches a remote image. The origin stays the original URL.
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) (model.ImagePayload, error) {
	payload, err := f.fetch(ctx, rawURL)
	if err != nil {
		return model.ImagePayload{}, err
	}
	payload.Origin = rawURL
	return payload, nil
}

// FetchCandidate fetches a catalog product image for visual-mode
// comparison. Same path as FromURL; the selector drops failures.
func (f *Fetcher) FetchCandidate(ctx context.Context, rawURL string) (model.ImagePayload, error) {
	return f.fetch(ctx, rawURL)
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (model.ImagePayload, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return model.ImagePayload{}, fmt.Errorf("%w: invalid URL %q", ErrCouldNotLoad, rawURL)
	}

	target := rawURL
	if f.proxyPrefix != "" {
		target = f.proxyPrefix + url.QueryEscape(rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return model.ImagePayload{}, fmt.Errorf("%w: %v", ErrCouldNotLoad, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return model.ImagePayload{}, fmt.Errorf("%w: %v", ErrCouldNotLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return model.ImagePayload{}, fmt.Errorf("%w: status %d for %s", ErrCouldNotLoad, resp.StatusCode, rawURL)
	}

	data, err := readCapped(resp.Body, f.maxBytes)
	if err != nil {
		return model.ImagePayload{}, err
	}

	mimeType := resp.Header.Get("Content-Type")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !allowedMIMETypes[mimeType] {
		mimeType = http.DetectContentType(data)
	}
	if !allowedMIMETypes[mimeType] {
		return model.ImagePayload{}, fmt.Errorf("%w: unsupported content type %s", ErrCouldNotLoad, mimeType)
	}

	return model.ImagePayload{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}, nil
}

// readCapped reads the whole stream, failing if it exceeds the cap.
func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotLoad, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrCouldNotLoad, maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrCouldNotLoad)
	}
	return data, nil
}
