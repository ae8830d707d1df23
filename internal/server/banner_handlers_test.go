package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

func createTestBanner(t *testing.T, s *Server, token, title string) models.Banner {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/banners", token, CreateBannerRequest{
		Title:    title,
		ImageURL: "https://cdn.shop.test/" + title + ".jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[models.Banner](t, rec)
}

func TestReorderBannersAssignsSequentialOrder(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	a := createTestBanner(t, s, admin.AccessToken, "summer-sale")
	b := createTestBanner(t, s, admin.AccessToken, "new-arrivals")
	c := createTestBanner(t, s, admin.AccessToken, "clearance")

	rec := doJSON(t, s, http.MethodPatch, "/banners/reorder", admin.AccessToken, ReorderBannersRequest{
		IDs: []string{c.ID, a.ID, b.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	banners := decodeBody[[]models.Banner](t, rec)
	require.Len(t, banners, 3)
	require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{banners[0].ID, banners[1].ID, banners[2].ID})
	for i, banner := range banners {
		require.Equal(t, i, banner.Order)
	}
}

func TestReorderBannersRejectsUnknownID(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	a := createTestBanner(t, s, admin.AccessToken, "summer-sale")

	rec := doJSON(t, s, http.MethodPatch, "/banners/reorder", admin.AccessToken, ReorderBannersRequest{
		IDs: []string{a.ID, "no-such-banner"},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Banner not found", errorMessage(t, rec))

	// The whole reorder rolls back, nothing was renumbered
	rec = doJSON(t, s, http.MethodGet, "/banners", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	banners := decodeBody[[]models.Banner](t, rec)
	require.Len(t, banners, 1)
	require.Equal(t, a.Order, banners[0].Order)
}

func TestDeleteBanner(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	banner := createTestBanner(t, s, admin.AccessToken, "clearance")

	rec := doJSON(t, s, http.MethodDelete, "/banners/"+banner.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/banners/"+banner.ID, admin.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
