package acquire

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func imageServer(t *testing.T, status int, contentType string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFromURL_Success(t *testing.T) {
	srv := imageServer(t, http.StatusOK, "image/png", pngHeader)
	f := NewFetcher("", 1<<20, 5*time.Second)

	payload, err := f.FromURL(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if payload.MIMEType != "image/png" {
		t.Errorf("unexpected MIME type %q", payload.MIMEType)
	}
	if payload.Origin != srv.URL+"/img.png" {
		t.Errorf("origin must stay the original URL, got %q", payload.Origin)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload.Base64)
	if err != nil || !bytes.Equal(decoded, pngHeader) {
		t.Errorf("payload bytes not round-tripped")
	}
}

func TestFromURL_SniffsMIMEWhenHeaderIsWrong(t *testing.T) {
	srv := imageServer(t, http.StatusOK, "application/octet-stream", pngHeader)
	f := NewFetcher("", 1<<20, 5*time.Second)

	payload, err := f.FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if payload.MIMEType != "image/png" {
		t.Errorf("expected sniffed image/png, got %q", payload.MIMEType)
	}
}

func TestFromURL_HTTPErrorStatus(t *testing.T) {
	srv := imageServer(t, http.StatusNotFound, "", nil)
	f := NewFetcher("", 1<<20, 5*time.Second)

	_, err := f.FromURL(context.Background(), srv.URL)
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad, got %v", err)
	}
}

func TestFromURL_Oversized(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1024)...)
	srv := imageServer(t, http.StatusOK, "image/png", big)
	f := NewFetcher("", 256, 5*time.Second)

	_, err := f.FromURL(context.Background(), srv.URL)
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad for oversized image, got %v", err)
	}
}

func TestFromURL_NonImageRejected(t *testing.T) {
	srv := imageServer(t, http.StatusOK, "text/html", []byte("<html>not an image</html>"))
	f := NewFetcher("", 1<<20, 5*time.Second)

	_, err := f.FromURL(context.Background(), srv.URL)
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad for non-image, got %v", err)
	}
}

func TestFromURL_InvalidScheme(t *testing.T) {
	f := NewFetcher("", 1<<20, 5*time.Second)

	_, err := f.FromURL(context.Background(), "ftp://example.com/a.png")
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad, got %v", err)
	}
}

func TestFromURL_RoutesThroughProxy(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngHeader)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(srv.URL+"/?", 1<<20, 5*time.Second)
	remote := "https://images.example.com/shoe.png"

	payload, err := f.FromURL(context.Background(), remote)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if gotQuery != url.QueryEscape(remote) {
		t.Errorf("proxy not used: query %q", gotQuery)
	}
	if payload.Origin != remote {
		t.Errorf("origin must be the original URL even via proxy, got %q", payload.Origin)
	}
}

func TestFromUpload_Success(t *testing.T) {
	fh := uploadHeader(t, "shoe.png", pngHeader)
	f := NewFetcher("", 1<<20, 5*time.Second)

	payload, err := f.FromUpload(fh)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if payload.MIMEType != "image/png" {
		t.Errorf("unexpected MIME type %q", payload.MIMEType)
	}
	if !strings.HasPrefix(payload.Origin, "data:image/png;base64,") {
		t.Errorf("upload origin must be a data URL, got %q", payload.Origin)
	}
}

func TestFromUpload_RejectsNonImage(t *testing.T) {
	fh := uploadHeader(t, "notes.txt", []byte("plain text, definitely not pixels"))
	f := NewFetcher("", 1<<20, 5*time.Second)

	_, err := f.FromUpload(fh)
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad, got %v", err)
	}
}

func TestFromUpload_RejectsOversized(t *testing.T) {
	fh := uploadHeader(t, "big.png", append(pngHeader, bytes.Repeat([]byte{1}, 2048)...))
	f := NewFetcher("", 128, 5*time.Second)

	_, err := f.FromUpload(fh)
	if !errors.Is(err, ErrCouldNotLoad) {
		t.Fatalf("expected ErrCouldNotLoad, got %v", err)
	}
}

// uploadHeader builds a real multipart.FileHeader around the given
// bytes.
func uploadHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", name)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(data)
	w.Close()

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(10 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	if len(files) != 1 {
		t.Fatalf("expected one file, got %d", len(files))
	}
	return files[0]
}
