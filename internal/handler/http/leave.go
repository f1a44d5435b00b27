package http

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/auth"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/leave"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve, "Leave request approved")
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject, "Leave request rejected")
}

func (h *leaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveResponse, error),
	message string,
) {
	var req leave.DecideLeaveRequestRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	// The decider is identified by the token, not the payload.
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	decidedBy, ok := claims["employee_id"].(string)
	if !ok || decidedBy == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	req.DecidedBy = decidedBy

	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}

	results, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	})
}
