package models

import (
	"time"

	"trichygold-order/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// Employee represents employees table
type Employee struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'employee'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate assigns a UUID when none is set
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the employee holds the admin role
func (e *Employee) IsAdmin() bool {
	return domain.Role(e.Role) == domain.RoleAdmin
}

// EmployeeResponse DTO
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Employee) ToResponse() *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Username:  e.Username,
		Role:      e.Role,
		IsAdmin:   e.IsAdmin(),
		CreatedAt: e.CreatedAt,
	}
}

// ============================================================
// Orders
// ============================================================

// OrderAggregate represents order_aggregates table: one employee's running
// item counts for one shop in one calendar month.
type OrderAggregate struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string `gorm:"size:36;not null;uniqueIndex:idx_order_scope,priority:1" json:"employee_id"`
	CreatedBy  string `gorm:"size:36;not null" json:"created_by"`
	Shop       string `gorm:"size:20;not null;uniqueIndex:idx_order_scope,priority:2;index" json:"shop"`
	Month      int    `gorm:"not null;uniqueIndex:idx_order_scope,priority:3;index:idx_order_period,priority:2" json:"month"`
	Year       int    `gorm:"not null;uniqueIndex:idx_order_scope,priority:4;index:idx_order_period,priority:1" json:"year"`

	KarakTea   int64 `gorm:"column:karak_tea;not null;default:0" json:"-"`
	MilkTea    int64 `gorm:"column:milk_tea;not null;default:0" json:"-"`
	Coffee     int64 `gorm:"column:coffee;not null;default:0" json:"-"`
	Rani       int64 `gorm:"column:rani;not null;default:0" json:"-"`
	SoftDrinks int64 `gorm:"column:soft_drinks;not null;default:0" json:"-"`
	FreshJuice int64 `gorm:"column:fresh_juice;not null;default:0" json:"-"`
	Sandwich   int64 `gorm:"column:sandwich;not null;default:0" json:"-"`
	Shawarma   int64 `gorm:"column:shawarma;not null;default:0" json:"-"`

	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrderAggregate) TableName() string {
	return "order_aggregates"
}

// ItemColumns maps every catalog item to its column in order_aggregates
var ItemColumns = [domain.ItemCount]string{
	domain.ItemKarakTea:   "karak_tea",
	domain.ItemMilkTea:    "milk_tea",
	domain.ItemCoffee:     "coffee",
	domain.ItemRani:       "rani",
	domain.ItemSoftDrinks: "soft_drinks",
	domain.ItemFreshJuice: "fresh_juice",
	domain.ItemSandwich:   "sandwich",
	domain.ItemShawarma:   "shawarma",
}

// BeforeCreate assigns a UUID when none is set
func (o *OrderAggregate) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Items returns the stored counts keyed by catalog item
func (o *OrderAggregate) Items() domain.Items {
	var items domain.Items
	for _, it := range domain.Catalog() {
		items[it] = *o.itemField(it)
	}
	return items
}

// SetItems overwrites the stored counts
func (o *OrderAggregate) SetItems(items domain.Items) {
	for _, it := range domain.Catalog() {
		*o.itemField(it) = items[it]
	}
}

func (o *OrderAggregate) itemField(it domain.Item) *int64 {
	switch it {
	case domain.ItemKarakTea:
		return &o.KarakTea
	case domain.ItemMilkTea:
		return &o.MilkTea
	case domain.ItemCoffee:
		return &o.Coffee
	case domain.ItemRani:
		return &o.Rani
	case domain.ItemSoftDrinks:
		return &o.SoftDrinks
	case domain.ItemFreshJuice:
		return &o.FreshJuice
	case domain.ItemSandwich:
		return &o.Sandwich
	default:
		return &o.Shawarma
	}
}

// OrderAggregateResponse DTO
type OrderAggregateResponse struct {
	ID         string       `json:"id"`
	EmployeeID string       `json:"employeeId"`
	CreatedBy  string       `json:"createdBy"`
	Shop       string       `json:"shop"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	Items      domain.Items `json:"items"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (o *OrderAggregate) ToResponse() *OrderAggregateResponse {
	return &OrderAggregateResponse{
		ID:         o.ID,
		EmployeeID: o.EmployeeID,
		CreatedBy:  o.CreatedBy,
		Shop:       o.Shop,
		Month:      o.Month,
		Year:       o.Year,
		Items:      o.Items(),
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates every table the service owns
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&OrderAggregate{},
	)
}
