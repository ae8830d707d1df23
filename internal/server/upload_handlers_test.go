package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFolder(t *testing.T) {
	require.Equal(t, "products", sanitizeFolder("products"))
	require.Equal(t, "products", sanitizeFolder(" products "))
	require.Equal(t, "secrets", sanitizeFolder("../../secrets"))
	require.Equal(t, "", sanitizeFolder(".."))
	require.Equal(t, "", sanitizeFolder(""))
}

func uploadTestFile(t *testing.T, s *Server, token, path, filename string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestUploadImageStoresFileInFolder(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := uploadTestFile(t, s, admin.AccessToken, "/upload/image?folder=products", "board.png")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[UploadResponse](t, rec)
	require.True(t, strings.HasPrefix(resp.URL, s.config.HTTP.PublicURL+"/uploads/products/"), resp.URL)
	require.True(t, strings.HasSuffix(resp.URL, ".png"), resp.URL)

	// The file itself landed under the configured upload directory
	name := filepath.Base(resp.URL)
	_, err := os.Stat(filepath.Join(s.config.Uploads.Dir, "products", name))
	require.NoError(t, err)
}

func TestUploadRequiresFileField(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/upload/file", admin.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImageByURLEchoesURL(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	rec := doJSON(t, s, http.MethodPost, "/upload/image/by-url", admin.AccessToken, UploadByURLRequest{
		URL: "https://images.shop.test/esp32.jpg",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://images.shop.test/esp32.jpg", decodeBody[UploadResponse](t, rec).URL)
}
