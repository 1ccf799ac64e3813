package domain

import "time"

type UserRole string

const (
	UserRoleDriver     UserRole = "DRIVER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRolePlantAdmin UserRole = "PLANT_ADMIN"
	UserRoleFinance    UserRole = "FINANCE"
	UserRoleMMD        UserRole = "MMD"
)

type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	PhoneNumber  string   `json:"phone_number"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	// Drivers carry an agency affiliation; plant-scoped roles (plant_admin,
	// finance, mmd) carry a plant affiliation. Admins carry neither.
	AgencyID  *int32    `json:"agency_id,omitempty"`
	PlantID   *int32    `json:"plant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
