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

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	svc    *service.TransactionService
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	transactions, err := h.svc.List(r.Context(), caller)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.svc.Create(r.Context(), caller, service.CreateTransactionInput{
		Date:           req.Date,
		Type:           model.TransactionType(req.Type),
		Category:       req.Category,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		BankID:         req.BankID,
		BankName:       req.BankName,
		Description:    req.Description,
		Attachment:     req.Attachment,
		InvestmentKind: model.InvestmentKind(req.InvestmentKind),
		Investors:      req.Investors,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transaction_created",
		"transaction_id", tx.ID,
		"owner_id", tx.OwnerID,
		"type", tx.Type,
	)

	writeJSON(w, http.StatusCreated, dto.ToTransactionResponse(tx))
}

// Update handles PUT /api/transactions/{id}.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "transaction id is required")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := repository.TransactionChanges{
		Date:          req.Date,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		BankID:        req.BankID,
		BankName:      req.BankName,
		Description:   req.Description,
		Attachment:    req.Attachment,
		Investors:     req.Investors,
	}
	if req.Type != nil {
		typ := model.TransactionType(*req.Type)
		changes.Type = &typ
	}
	if req.InvestmentKind != nil {
		kind := model.InvestmentKind(*req.InvestmentKind)
		changes.InvestmentKind = &kind
	}

	if err := h.svc.Update(r.Context(), caller, id, changes); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/transactions/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "transaction id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), caller, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// BulkDelete handles POST /api/transactions/bulk-delete.
func (h *TransactionHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	var req dto.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.BulkDelete(r.Context(), caller, req.IDs); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("transactions_bulk_deleted",
		"owner_id", caller.UserID,
		"requested", len(req.IDs),
	)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// BulkCategory handles POST /api/transactions/bulk-category.
func (h *TransactionHandler) BulkCategory(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustIdentityFromContext(r.Context())

	var req dto.BulkCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.BulkSetCategory(r.Context(), caller, req.IDs, req.Category); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// handleServiceError maps transaction service errors to HTTP responses.
func (h *TransactionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, service.ErrInvalidInvestmentKind):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
