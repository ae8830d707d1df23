package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
)

// UploadResult carries the public URL of an uploaded asset
type UploadResult struct {
	URL string `json:"url"`
}

// UploadImageByURLRequest asks the server to register a remote image URL
type UploadImageByURLRequest struct {
	URL string `json:"url"`
}

// UploadImage uploads a local image file and returns its public URL
func (c *Client) UploadImage(ctx context.Context, path, folder string) (*UploadResult, error) {
	return c.uploadFile(ctx, "/upload/image", path, folder)
}

// UploadFile uploads an arbitrary local file and returns its public URL
func (c *Client) UploadFile(ctx context.Context, path, folder string) (*UploadResult, error) {
	return c.uploadFile(ctx, "/upload/file", path, folder)
}

// UploadImageByURL registers a remote image URL without transferring bytes
func (c *Client) UploadImageByURL(ctx context.Context, imageURL string) (*UploadResult, error) {
	var result UploadResult
	if err := c.do(ctx, http.MethodPost, "/upload/image/by-url", nil, UploadImageByURLRequest{URL: imageURL}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadImages uploads several images concurrently. Results keep the input
// order; the first error wins but every upload runs to completion.
func (c *Client) UploadImages(ctx context.Context, paths []string, folder string) ([]UploadResult, error) {
	results := make([]UploadResult, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			res, err := c.UploadImage(ctx, p, folder)
			if err != nil {
				errs[i] = fmt.Errorf("upload %s: %w", p, err)
				return
			}
			results[i] = *res
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// uploadFile builds the multipart payload in memory so the auth pipeline can
// re-issue it unchanged after a token refresh.
func (c *Client) uploadFile(ctx context.Context, endpoint, path, folder string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload payload: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload payload: %w", err)
	}

	var result UploadResult
	if err := c.send(ctx, http.MethodPost, endpoint, queryValues("folder", folder), buf.Bytes(), writer.FormDataContentType(), &result, 0); err != nil {
		return nil, err
	}
	return &result, nil
}
