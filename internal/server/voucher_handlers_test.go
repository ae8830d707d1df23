package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/levanduy093-work/electronics-admin/internal/models"
)

func TestCreateVoucherRejectsDuplicateCode(t *testing.T) {
	s := newTestServer(t)
	admin := setupAdmin(t, s)

	req := CreateVoucherRequest{
		Code:          "WELCOME10",
		DiscountPrice: 10000,
		Expire:        time.Now().UTC().Add(30 * 24 * time.Hour),
	}

	rec := doJSON(t, s, http.MethodPost, "/vouchers", admin.AccessToken, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodPost, "/vouchers", admin.AccessToken, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Voucher code already exists", errorMessage(t, rec))
}

func TestSweepRemovesOnlyExpiredVouchers(t *testing.T) {
	s := newTestServer(t)
	setupAdmin(t, s)

	db := s.GetDB()
	expired := models.Voucher{
		Code:          "SPRING24",
		DiscountPrice: 5000,
		Expire:        time.Now().UTC().Add(-24 * time.Hour),
	}
	valid := models.Voucher{
		Code:          "AUTUMN26",
		DiscountPrice: 5000,
		Expire:        time.Now().UTC().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&valid).Error)

	s.sweepExpiredVouchers()

	var remaining []models.Voucher
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, "AUTUMN26", remaining[0].Code)
}
