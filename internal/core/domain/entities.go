package domain

// Role represents an account role
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Shop identifies one of the two sale locations
type Shop string

const (
	ShopRestaurant1 Shop = "restaurant1"
	ShopRestaurant2 Shop = "restaurant2"
)

// DefaultShop is used when a submission does not name a shop
const DefaultShop = ShopRestaurant1

// Shops returns every shop in display order
func Shops() []Shop {
	return []Shop{ShopRestaurant1, ShopRestaurant2}
}

// ParseShop converts a raw value into a Shop
func ParseShop(s string) (Shop, bool) {
	switch Shop(s) {
	case ShopRestaurant1, ShopRestaurant2:
		return Shop(s), true
	}
	return "", false
}

// Status is the processing state of an order aggregate.
// Any status may be overwritten by any other.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus converts a raw value into a Status
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// Period is a calendar month of a year
type Period struct {
	Month int
	Year  int
}

// Valid reports whether the period names a real month
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1 && p.Year <= 9999
}

// Identity is the caller identity carried by a session token
type Identity struct {
	ID   string
	Role Role
	Name string
}

// IsAdmin reports whether the identity holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
