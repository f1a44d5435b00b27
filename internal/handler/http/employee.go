package http

import (
	"net/http"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// EmployeeHandler serves the read-only employee lookups the scheduling
// screens need; employee management itself lives in the back-office CRUD.
type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
