// Package recognition talks to the audio recognition service. The service
// samples an uploaded recording and reports the songs it matched; how it does
// so is its own business.
package recognition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"bordero/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoSongsRecognized = errors.New("no songs recognized")
)

// SupportedExtensions are the audio containers the service accepts.
var SupportedExtensions = []string{".mp3", ".wav", ".flac", ".ogg", ".m4a"}

const maxErrorBody = 4 << 10

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. with an httptest server client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New builds a client for the service at baseURL. Recognition scans the whole
// recording, so timeout is usually minutes rather than seconds.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SupportedFormat reports whether filename has an accepted audio extension.
func SupportedFormat(filename string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(filename)))
}

type recognizeResponse struct {
	Success   bool                    `json:"success"`
	SongCount int                     `json:"song_count"`
	Songs     []models.RecognizedSong `json:"songs"`
	Error     string                  `json:"error"`
	Detail    string                  `json:"detail"`
}

// Recognize uploads audio under filename and returns the matched songs in the
// order they were heard.
func (c *Client) Recognize(ctx context.Context, filename string, audio io.Reader) ([]models.RecognizedSong, error) {
	const op = "recognition.Recognize"

	if !SupportedFormat(filename) {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnsupportedFormat, filepath.Ext(filename))
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err = io.Copy(part, audio); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recognize", pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to call recognizer: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: recognizer returned status %d: %s", op, resp.StatusCode, errorDetail(resp.Body))
	}

	var body recognizeResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	if !body.Success || len(body.Songs) == 0 {
		if body.Error != "" {
			return nil, fmt.Errorf("%s: %w: %s", op, ErrNoSongsRecognized, body.Error)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrNoSongsRecognized)
	}

	return body.Songs, nil
}

func errorDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return err.Error()
	}

	var body recognizeResponse
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Detail != "":
			return body.Detail
		case body.Error != "":
			return body.Error
		}
	}

	return strings.TrimSpace(string(raw))
}
