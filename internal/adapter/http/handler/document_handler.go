package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/traveledger/internal/adapter/http/dto"
	"github.com/iho/traveledger/internal/domain"
	"github.com/iho/traveledger/internal/usecase"
)

// DocumentService defines the behavior needed by DocumentHandler.
type DocumentService interface {
	CreateDocument(ctx context.Context, input usecase.CreateDocumentInput) (*domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	ListDocuments(ctx context.Context, filter usecase.DocumentFilter) ([]*domain.Document, error)
	ChangeStatus(ctx context.Context, id string, next domain.DocumentStatus) (*domain.Document, error)
	UpdateAmount(ctx context.Context, id string, input usecase.UpdateAmountInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id string) (*domain.Document, error)
}

// DocumentHandler handles document-related HTTP requests.
type DocumentHandler struct {
	documentUC DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentUC DocumentService) *DocumentHandler {
	return &DocumentHandler{documentUC: documentUC}
}

// Create creates a new document in draft status.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	doc, err := h.documentUC.CreateDocument(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create document", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DocumentFromDomain(doc))
}

// Get retrieves a document by ID. Deleted documents remain readable.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing document ID", "")
		return
	}

	doc, err := h.documentUC.GetDocument(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get document", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DocumentFromDomain(doc))
}

// List lists documents with optional type, status and account filters.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DocumentFilter{
		Limit:   parseIntQuery(r, "limit", 20),
		Offset:  parseIntQuery(r, "offset", 0),
		Deleted: r.URL.Query().Get("include_deleted") == "true",
	}

	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.DocumentType(v)
		filter.Type = &t
	}
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.DocumentStatus(v)
		filter.Status = &s
	}
	if v := r.URL.Query().Get("account_id"); v != "" {
		filter.AccountID = &v
	}

	docs, err := h.documentUC.ListDocuments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDocumentsResponse{
		Documents: dto.DocumentsFromDomain(docs),
		Total:     int64(len(docs)),
	})
}

// ChangeStatus moves a document through its lifecycle. Completing a document
// with cash effect applies it to the linked account; cancelling reverses it.
func (h *DocumentHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing document ID", "")
		return
	}

	var req dto.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	doc, err := h.documentUC.ChangeStatus(r.Context(), id, domain.DocumentStatus(req.Status))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to change document status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DocumentFromDomain(doc))
}

// UpdateAmount edits a document's monetary fields.
func (h *DocumentHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing document ID", "")
		return
	}

	var req dto.UpdateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	doc, err := h.documentUC.UpdateAmount(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update document amount", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DocumentFromDomain(doc))
}

// Delete tombstones a document and reverses any applied balance effect.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing document ID", "")
		return
	}

	doc, err := h.documentUC.DeleteDocument(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete document", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DocumentFromDomain(doc))
}
