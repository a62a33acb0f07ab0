package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// HTTPUploader uploads artifacts to a Cloudinary-style HTTP endpoint via
// multipart form upload and returns the public URL from the response.
type HTTPUploader struct {
	endpoint string
	preset   string
	client   *http.Client
}

// NewHTTPUploader builds an uploader for the given endpoint. The client
// timeout bounds the whole upload (the upstream design had none; uploads of a
// few hundred KB have no business taking longer than this).
func NewHTTPUploader(endpoint, preset string, timeout time.Duration) *HTTPUploader {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HTTPUploader{
		endpoint: endpoint,
		preset:   preset,
		client:   &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (u *HTTPUploader) Store(ctx context.Context, filename string, data []byte, _ string) (Artifact, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	if _, err := fw.Write(data); err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	if u.preset != "" {
		if err := mw.WriteField("upload_preset", u.preset); err != nil {
			return Artifact{}, &UploadError{Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return Artifact{}, &UploadError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return Artifact{}, &UploadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Artifact{}, &UploadError{Err: fmt.Errorf("upload endpoint returned %d: %s", resp.StatusCode, snippet)}
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return Artifact{}, &UploadError{Err: fmt.Errorf("decode upload response: %w", err)}
	}
	url := ur.SecureURL
	if url == "" {
		url = ur.URL
	}
	if url == "" {
		return Artifact{}, &UploadError{Err: fmt.Errorf("upload response contained no URL")}
	}
	return Artifact{URL: url}, nil
}
