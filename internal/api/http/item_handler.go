package http

import (
	"encoding/json"
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

// ItemHandler exposes the item catalog over HTTP
type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

type newItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"request_id"` // Ties the item to the request it answers
}

type newCommentRequest struct {
	Text string `json:"text"`
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	var req newItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.Description == "" || req.Available == nil {
		writeBadRequest(w, "item requires name, description and availability")
		return
	}

	item := &domain.Item{Name: req.Name, Description: req.Description, Available: *req.Available, RequestID: req.RequestID}
	created, err := h.itemSvc.CreateItem(r.Context(), item, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateItem handles PATCH /items/{itemId}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeBadRequest(w, "invalid item id")
		return
	}
	var update service.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := h.itemSvc.UpdateItem(r.Context(), update, userID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetItem handles GET /items/{itemId}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeBadRequest(w, "invalid item id")
		return
	}

	details, err := h.itemSvc.GetItem(r.Context(), itemID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// ListOwnersItems handles GET /items
func (h *ItemHandler) ListOwnersItems(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}

	items, err := h.itemSvc.ListOwnersItems(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SearchItems handles GET /items/search?text=
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.SearchItems(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateComment handles POST /items/{itemId}/comment
func (h *ItemHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeBadRequest(w, "invalid item id")
		return
	}
	var req newCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeBadRequest(w, "comment text is required")
		return
	}

	comment, err := h.itemSvc.CreateComment(r.Context(), req.Text, itemID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
