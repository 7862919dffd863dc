package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/dto/request"
	"helper-booking/internal/usecase"
	"helper-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommunityHandler struct {
	service usecase.CommunityService
	log     *zap.Logger
}

func NewCommunityHandler(service usecase.CommunityService, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		log:     log.With(zap.String("handler", "community")),
	}
}

// CreateRequest handles POST /api/community/requests (protected)
func (h *CommunityHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.CreateHelpRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	helpRequest, err := h.service.CreateRequest(r.Context(), userID, entity.UserRole(role), &req)
	if err != nil {
		h.handleServiceError(w, err, "create help request")
		return
	}

	utils.ResponseCreated(w, "Help request created successfully", helpRequest)
}

// ListRequests handles GET /api/community/requests (protected).
// ?mine=true returns the caller's own requests, public or not.
func (h *CommunityHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	mine := r.URL.Query().Get("mine") == "true"
	p := paginationFromQuery(r)

	requests, err := h.service.ListRequests(r.Context(), userID, mine, p)
	if err != nil {
		h.handleServiceError(w, err, "list help requests")
		return
	}

	utils.ResponseSuccess(w, "Help requests retrieved successfully", requests)
}

// GetRequest handles GET /api/community/requests/{requestId} (protected)
func (h *CommunityHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	requestID := chi.URLParam(r, "requestId")
	if requestID == "" {
		utils.ResponseBadRequest(w, "Request ID is required", nil)
		return
	}

	helpRequest, err := h.service.GetRequest(r.Context(), userID, entity.UserRole(role), requestID)
	if err != nil {
		h.handleServiceError(w, err, "get help request")
		return
	}

	utils.ResponseSuccess(w, "Help request retrieved successfully", helpRequest)
}

// UpdateStatus handles PUT /api/community/requests/{requestId}/status (protected)
func (h *CommunityHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	requestID := chi.URLParam(r, "requestId")
	if requestID == "" {
		utils.ResponseBadRequest(w, "Request ID is required", nil)
		return
	}

	var req request.UpdateHelpStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	helpRequest, err := h.service.UpdateStatus(r.Context(), userID, entity.UserRole(role), requestID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update help request status")
		return
	}

	utils.ResponseSuccess(w, "Help request status updated successfully", helpRequest)
}

// RegisterVolunteer handles POST /api/community/volunteers (protected)
func (h *CommunityHandler) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RegisterVolunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	volunteer, err := h.service.RegisterVolunteer(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "register volunteer")
		return
	}

	utils.ResponseCreated(w, "Volunteer registered successfully", volunteer)
}

// ListVolunteers handles GET /api/community/volunteers (protected)
func (h *CommunityHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	filter := repository.VolunteerFilter{
		Skill:        query.Get("skill"),
		Availability: entity.Availability(query.Get("availability")),
	}
	p := paginationFromQuery(r)

	volunteers, err := h.service.ListVolunteers(r.Context(), filter, p)
	if err != nil {
		h.handleServiceError(w, err, "list volunteers")
		return
	}

	utils.ResponseSuccess(w, "Volunteers retrieved successfully", volunteers)
}

// MyVolunteerProfile handles GET /api/community/volunteers/me (protected)
func (h *CommunityHandler) MyVolunteerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	volunteer, err := h.service.MyVolunteerProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get volunteer profile")
		return
	}

	utils.ResponseSuccess(w, "Volunteer profile retrieved successfully", volunteer)
}

func (h *CommunityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not allowed"),
		strings.Contains(errMsg, "profile required"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "illegal status transition"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
