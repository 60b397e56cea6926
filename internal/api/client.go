package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/kagazlabs/kagaz-cli/internal/validate"
)

// DefaultBaseURL is where a locally run analysis backend listens.
const DefaultBaseURL = "http://localhost:8001"

// Client talks to the document-analysis service over HTTP. One client is
// constructed at process start from configuration; commands share it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	audioBase  string
}

// NewClient returns a client for the service at baseURL. audioBase may be
// empty to serve audio from the same host.
func NewClient(baseURL, audioBase string, httpTimeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpTimeout <= 0 {
		httpTimeout = 120 * time.Second
	}
	base := strings.TrimRight(baseURL, "/")
	audio := strings.TrimRight(audioBase, "/")
	if audio == "" {
		audio = base
	}
	return &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    base,
		audioBase:  audio,
	}
}

// NewClientWithBaseURL builds a client against a custom base URL (used in tests).
func NewClientWithBaseURL(baseURL string, httpTimeout time.Duration) *Client {
	return NewClient(baseURL, "", httpTimeout)
}

// BaseURL returns the configured service address, for user-facing hints.
func (c *Client) BaseURL() string { return c.baseURL }

// SubmitRequest describes one document upload.
type SubmitRequest struct {
	Name     string // filename reported to the service
	Language string // requested output language code
	Data     []byte // file contents
}

// SubmitDocument uploads one document as multipart form data and returns the
// service's receipt. onProgress, when non-nil, receives whole percentages of
// the request body sent, best effort. Exactly one request is made; the caller
// decides whether a failed upload is retried.
func (c *Client) SubmitDocument(ctx context.Context, req SubmitRequest, onProgress func(int)) (*UploadReceipt, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("language", req.Language); err != nil {
		return nil, fmt.Errorf("write language field: %w", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(req.Name)))
	if mt, ok := validate.MediaType(req.Name); ok {
		header.Set("Content-Type", mt)
	} else {
		header.Set("Content-Type", "application/octet-stream")
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	pr := &progressReader{
		r:      bytes.NewReader(body.Bytes()),
		total:  int64(body.Len()),
		report: onProgress,
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.ContentLength = pr.total

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UnreachableError{Host: c.baseURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.responseError(resp, "")
	}
	var receipt UploadReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode upload response: %w", err)}
	}
	if receipt.DocumentID == "" {
		return nil, &ParseError{Err: errors.New("upload response missing document_id")}
	}
	return &receipt, nil
}

// FetchDocument retrieves one stored record by its identifier. Every call
// issues exactly one request; nothing is cached between calls.
func (c *Client) FetchDocument(ctx context.Context, id string) (*Document, error) {
	endpoint := c.baseURL + "/documents/" + url.PathEscape(id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UnreachableError{Host: c.baseURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.responseError(resp, id)
	}
	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode document: %w", err)}
	}
	if doc.ID == "" {
		// a success body carrying no record means the document is gone
		return nil, &NotFoundError{APIError: &APIError{StatusCode: resp.StatusCode}, ID: id}
	}
	return &doc, nil
}

// ListDocuments retrieves the most recent records, newest first, capped at
// limit when limit is positive.
func (c *Client) ListDocuments(ctx context.Context, limit int) ([]Document, error) {
	endpoint := c.baseURL + "/documents"
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UnreachableError{Host: c.baseURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.responseError(resp, "")
	}
	var docs []Document
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode document list: %w", err)}
	}
	return docs, nil
}

// FetchAudio streams the synthesized audio behind a stored reference. The
// caller must close the returned reader.
func (c *Client) FetchAudio(ctx context.Context, ref string) (io.ReadCloser, error) {
	name := AudioFilename(ref)
	if name == "" {
		return nil, &ParseError{Err: errors.New("empty audio reference")}
	}
	endpoint := c.audioBase + "/audio/" + url.PathEscape(name)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UnreachableError{Host: c.audioBase, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, c.responseError(resp, name)
	}
	return resp.Body, nil
}

// SeedTestDocument asks the service to create a canned analyzed record and
// returns its identifier. It exists for smoke-testing a backend.
func (c *Client) SeedTestDocument(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/test-document", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &UnreachableError{Host: c.baseURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.responseError(resp, "")
	}
	var out struct {
		DocumentID string `json:"document_id"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ParseError{Err: fmt.Errorf("decode seed response: %w", err)}
	}
	if out.DocumentID == "" {
		return "", &ParseError{Err: errors.New("seed response missing document_id")}
	}
	return out.DocumentID, nil
}

// AudioFilename reduces a stored audio reference to its final path segment.
// References are opaque server paths; only the basename means anything to the
// audio endpoint.
func AudioFilename(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	ref = strings.ReplaceAll(ref, "\\", "/")
	return path.Base(ref)
}

// AudioURL returns the playable URL for a stored audio reference.
func (c *Client) AudioURL(ref string) string {
	name := AudioFilename(ref)
	if name == "" {
		return ""
	}
	return c.audioBase + "/audio/" + name
}

// responseError decodes a non-success body into the error taxonomy.
func (c *Client) responseError(resp *http.Response, id string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	var raw struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &raw)
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: raw.Detail}
	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{APIError: apiErr, ID: id}
	}
	return apiErr
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// progressReader reports whole-percent progress as the request body drains.
type progressReader struct {
	r      *bytes.Reader
	total  int64
	sent   int64
	last   int
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.report != nil && p.total > 0 {
			pct := int(p.sent * 100 / p.total)
			if pct > 100 {
				pct = 100
			}
			if pct != p.last {
				p.last = pct
				p.report(pct)
			}
		}
	}
	return n, err
}
