package employee

import "context"

// EmployeeRepository defines the lookups the scheduling core needs.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Exists reports whether an employee record exists
	Exists(ctx context.Context, id string) (bool, error)

	// List retrieves all employees, newest first
	List(ctx context.Context) ([]Employee, error)
}
