package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finly/finly/internal/auth"
	"github.com/finly/finly/internal/handler/dto"
	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/repository"
	"github.com/finly/finly/internal/service"
)

// BankHandler handles HTTP requests for bank card records.
type BankHandler struct {
	svc    *service.BankService
	logger *slog.Logger
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(svc *service.BankService, logger *slog.Logger) *BankHandler {
	return &BankHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/banks.
func (h *BankHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	banks, err := h.svc.List(r.Context(), caller)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBankListResponse(banks))
}

// Create handles POST /api/banks.
func (h *BankHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	var req dto.CreateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bank, err := h.svc.Create(r.Context(), caller, service.CreateBankInput{
		BankName:   req.BankName,
		HolderName: req.HolderName,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CardType:   model.CardType(req.CardType),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("bank_created",
		"bank_id", bank.ID,
		"owner_id", bank.OwnerID,
	)

	writeJSON(w, http.StatusCreated, dto.ToBankResponse(bank))
}

// Update handles PUT /api/banks/{id}.
func (h *BankHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bank id is required")
		return
	}

	var req dto.UpdateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := repository.BankChanges{
		BankName:   req.BankName,
		HolderName: req.HolderName,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
	}
	if req.CardType != nil {
		ct := model.CardType(*req.CardType)
		changes.CardType = &ct
	}

	if err := h.svc.Update(r.Context(), caller, id, changes); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/banks/{id}.
func (h *BankHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bank id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), caller, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// handleServiceError maps bank service errors to HTTP responses.
func (h *BankHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCardType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
