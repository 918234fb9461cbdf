package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"basobasFront/internal/models"
)

// Client talks to the remote listings API. It is a thin transport: every
// failure is terminal for the one action that triggered it, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// do issues one request. A bearer token is attached when present. 401 maps to
// models.ErrUnauthenticated so callers can force a re-login; transport errors
// map to models.ErrAPIUnavailable so views can fall back to empty collections.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return models.ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return models.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrNoRecord
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("listings api: unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, bytes.NewReader(raw), "application/json", out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, "", nil)
}

// multipartBody assembles the listing form the way the browser submitted it:
// plain string fields plus an optional single image part. Blank fields are
// omitted so the API keeps existing values on update.
func multipartBody(fields map[string]string, imageField, imageName string, image []byte) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	if len(image) > 0 {
		part, err := w.CreateFormFile(imageField, imageName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
