package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee is the staff record the scheduling core references. Full employee
// management (photos, documents, payroll data) is owned by the back-office
// CRUD layer; this core only needs identity and role.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Position  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
