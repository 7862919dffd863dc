package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"helper-booking/internal/dto/request"
	"helper-booking/internal/usecase"
	"helper-booking/pkg/utils"

	"go.uber.org/zap"
)

type WalletHandler struct {
	service usecase.WalletService
	log     *zap.Logger
}

func NewWalletHandler(service usecase.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		log:     log.With(zap.String("handler", "wallet")),
	}
}

// GetWallet handles GET /api/wallet (protected)
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	wallet, err := h.service.GetWallet(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get wallet")
		return
	}

	utils.ResponseSuccess(w, "Wallet retrieved successfully", wallet)
}

// AddMoney handles POST /api/wallet/add (protected)
func (h *WalletHandler) AddMoney(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	wallet, err := h.service.AddMoney(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add money")
		return
	}

	utils.ResponseSuccess(w, "Money added successfully", wallet)
}

// RedeemPoints handles POST /api/wallet/redeem (protected)
func (h *WalletHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RedeemPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	wallet, err := h.service.RedeemPoints(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "redeem points")
		return
	}

	utils.ResponseSuccess(w, "Points redeemed successfully", wallet)
}

// ApplyReferral handles POST /api/wallet/referral (protected)
func (h *WalletHandler) ApplyReferral(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ApplyReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	wallet, err := h.service.ApplyReferral(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "apply referral")
		return
	}

	utils.ResponseSuccess(w, "Referral applied successfully", wallet)
}

// ListTransactions handles GET /api/wallet/transactions (protected)
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	p := paginationFromQuery(r)

	transactions, err := h.service.ListTransactions(r.Context(), userID, p)
	if err != nil {
		h.handleServiceError(w, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, "Transactions retrieved successfully", transactions)
}

// GetRewards handles GET /api/wallet/rewards (protected)
func (h *WalletHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rewards, err := h.service.GetRewards(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get rewards")
		return
	}

	utils.ResponseSuccess(w, "Rewards retrieved successfully", rewards)
}

// PayBooking handles POST /api/wallet/pay (protected)
func (h *WalletHandler) PayBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PayBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	wallet, err := h.service.PayBooking(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "pay booking")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", wallet)
}

func (h *WalletHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not allowed"),
		strings.Contains(errMsg, "only the"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "insufficient"),
		strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "not payable"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
