package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/levanduy093-work/electronics-admin/internal/auth"
	"github.com/levanduy093-work/electronics-admin/internal/models"
)

// SeedFile is the YAML layout of a seed data file (SEED_FILE env var).
// Seeding is idempotent: rows that already exist (by unique key) are skipped.
type SeedFile struct {
	Users []struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Products []struct {
		Name          string            `yaml:"name"`
		Code          string            `yaml:"code"`
		Category      string            `yaml:"category"`
		OriginalPrice int64             `yaml:"originalPrice"`
		SalePrice     int64             `yaml:"salePrice"`
		Stock         int               `yaml:"stock"`
		Description   string            `yaml:"description"`
		Specs         map[string]string `yaml:"specs"`
	} `yaml:"products"`
	Vouchers []struct {
		Code          string    `yaml:"code"`
		Description   string    `yaml:"description"`
		DiscountPrice int64     `yaml:"discountPrice"`
		MinTotal      int64     `yaml:"minTotal"`
		Expire        time.Time `yaml:"expire"`
	} `yaml:"vouchers"`
}

// seedFromFile loads seed data from the given YAML file. An empty path is a
// no-op. Requires the JWT secret (and hence first setup) only for users.
func (s *Server) seedFromFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, u := range seed.Users {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}

		role := u.Role
		if role == "" {
			role = models.RoleCustomer
		}

		if err := s.db.Create(&models.User{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: hash,
			Role:         role,
		}).Error; err != nil {
			return err
		}
		s.logger.Info().Str("email", u.Email).Str("role", role).Msg("Seeded user")
	}

	for _, p := range seed.Products {
		var count int64
		if err := s.db.Model(&models.Product{}).Where("code = ?", p.Code).Count(&count).Error; err != nil {
			return err
		}
		if p.Code != "" && count > 0 {
			continue
		}

		if err := s.db.Create(&models.Product{
			Name:        p.Name,
			Code:        p.Code,
			Category:    p.Category,
			Price:       models.Price{OriginalPrice: p.OriginalPrice, SalePrice: p.SalePrice},
			Stock:       p.Stock,
			Description: p.Description,
			Specs:       p.Specs,
			Images:      []string{},
		}).Error; err != nil {
			return err
		}
	}

	for _, v := range seed.Vouchers {
		var count int64
		if err := s.db.Model(&models.Voucher{}).Where("code = ?", v.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := s.db.Create(&models.Voucher{
			Code:          v.Code,
			Description:   v.Description,
			DiscountPrice: v.DiscountPrice,
			MinTotal:      v.MinTotal,
			Expire:        v.Expire,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
