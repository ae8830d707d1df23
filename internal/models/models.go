package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// BaseModel provides common fields and auto-generated ULID for all models
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(26)"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// BeforeCreate generates a ULID for the ID field if it's empty
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ulid.Make().String()
	}
	return nil
}

// User roles. The admin application only admits users with RoleAdmin.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Config represents the global configuration for the deployment.
// This is a singleton model (only one row should exist).
type Config struct {
	BaseModel
	// Auto-generated on first setup (64 hex chars)
	JWTSecret string `json:"-" gorm:"type:varchar(64);not null"`
}

// User represents a shop account. Customers register through the storefront;
// only admins may use the back office.
type User struct {
	BaseModel
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	Role         string    `json:"role" gorm:"not null;default:customer"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Price holds the original and discounted price of a product, in VND.
type Price struct {
	OriginalPrice int64 `json:"originalPrice"`
	SalePrice     int64 `json:"salePrice"`
}

// Product represents a catalog item (resistors, ICs, boards, ...)
type Product struct {
	BaseModel
	Name            string            `json:"name" gorm:"not null;index"`
	Code            string            `json:"code,omitempty" gorm:"index"`
	Category        string            `json:"category,omitempty" gorm:"index"`
	Price           Price             `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Stock           int               `json:"stock" gorm:"not null;default:0"`
	Description     string            `json:"description,omitempty" gorm:"type:text"`
	Images          []string          `json:"images" gorm:"serializer:json"`
	Datasheet       string            `json:"datasheet,omitempty"`
	Options         []string          `json:"options,omitempty" gorm:"serializer:json"`
	Classifications []string          `json:"classifications,omitempty" gorm:"serializer:json"`
	Specs           map[string]string `json:"specs,omitempty" gorm:"serializer:json"`
	UpdatedAt       time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderStatus is the order fulfilment timeline. Each step records when it was
// reached; a nil step has not happened yet. Steps only ever move forward.
type OrderStatus struct {
	Ordered   *time.Time `json:"ordered,omitempty"`
	Confirmed *time.Time `json:"confirmed,omitempty"`
	Packaged  *time.Time `json:"packaged,omitempty"`
	Shipped   *time.Time `json:"shipped,omitempty"`
}

// OrderItem is a line item inside an order
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// ShippingAddress is the delivery address attached to an order
type ShippingAddress struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
}

// Order represents a customer order
type Order struct {
	BaseModel
	Code            string          `json:"code" gorm:"unique;not null"`
	UserID          string          `json:"userId" gorm:"not null;index"`
	Status          OrderStatus     `json:"status" gorm:"serializer:json"`
	IsCancelled     bool            `json:"isCancelled" gorm:"not null;default:false"`
	TotalPrice      int64           `json:"totalPrice" gorm:"not null;default:0"`
	Payment         string          `json:"payment"`
	PaymentStatus   string          `json:"paymentStatus"`
	Items           []OrderItem     `json:"items" gorm:"serializer:json"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"serializer:json"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ShipmentStatusEntry records one step of a shipment's history
type ShipmentStatusEntry struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Shipment represents a carrier shipment for an order
type Shipment struct {
	BaseModel
	OrderID          string                `json:"orderId" gorm:"not null;index"`
	Carrier          string                `json:"carrier" gorm:"not null"`
	TrackingNumber   string                `json:"trackingNumber"`
	Status           string                `json:"status" gorm:"not null;default:pending"`
	StatusHistory    []ShipmentStatusEntry `json:"statusHistory" gorm:"serializer:json"`
	ExpectedDelivery *time.Time            `json:"expectedDelivery,omitempty"`
	UpdatedAt        time.Time             `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Voucher represents a discount voucher
type Voucher struct {
	BaseModel
	Code          string    `json:"code" gorm:"unique;not null"`
	Description   string    `json:"description"`
	DiscountPrice int64     `json:"discountPrice" gorm:"not null"`
	MinTotal      int64     `json:"minTotal" gorm:"not null;default:0"`
	Expire        time.Time `json:"expire" gorm:"not null;index"`
}

// Banner represents a storefront banner slide
type Banner struct {
	BaseModel
	Title     string `json:"title" gorm:"not null"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"imageUrl" gorm:"not null"`
	CTALabel  string `json:"ctaLabel,omitempty"`
	ProductID string `json:"productId,omitempty"`
	IsActive  bool   `json:"isActive" gorm:"not null;default:true"`
	Order     int    `json:"order" gorm:"not null;default:0;index"`
}

// NotificationTarget describes who a notification is delivered to
type NotificationTarget struct {
	Scope  string `json:"scope"` // "all_users" or "user"
	UserID string `json:"userId,omitempty"`
}

// Notification represents an admin-authored notification
type Notification struct {
	BaseModel
	Title     string               `json:"title" gorm:"not null"`
	Body      string               `json:"body" gorm:"type:text;not null"`
	Type      string               `json:"type" gorm:"not null;default:system"`
	Priority  string               `json:"priority" gorm:"not null;default:normal"` // low, normal, high
	SendAt    *time.Time           `json:"sendAt,omitempty"`
	ExpiresAt *time.Time           `json:"expiresAt,omitempty"`
	Targets   []NotificationTarget `json:"targets" gorm:"serializer:json"`
}

// Review represents a product review left by a customer
type Review struct {
	BaseModel
	UserID    string `json:"userId" gorm:"not null;index"`
	ProductID string `json:"productId" gorm:"not null;index"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment" gorm:"type:text"`
}

// Transaction represents a payment transaction for an order
type Transaction struct {
	BaseModel
	OrderID   string     `json:"orderId" gorm:"not null;index"`
	UserID    string     `json:"userId" gorm:"not null;index"`
	Provider  string     `json:"provider" gorm:"not null"`
	Amount    int64      `json:"amount" gorm:"not null"`
	Currency  string     `json:"currency" gorm:"not null;default:VND"`
	Status    string     `json:"status" gorm:"not null;default:pending"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Inventory movement types. "in" and "out" shift stock by quantity;
// "adjust" sets the absolute level.
const (
	MovementIn     = "in"
	MovementOut    = "out"
	MovementAdjust = "adjust"
)

// InventoryMovement represents a stock change applied to a product
type InventoryMovement struct {
	BaseModel
	ProductID string    `json:"productId" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&Config{}, &User{}, &Product{}, &Order{}, &Shipment{},
		&Voucher{}, &Banner{}, &Notification{}, &Review{},
		&Transaction{}, &InventoryMovement{},
	}

	return db.AutoMigrate(models...)
}

// FindByID safely finds a record by string ID
func FindByID[T any](db *gorm.DB, id string, model *T) error {
	return db.Where("id = ?", id).First(model).Error
}
