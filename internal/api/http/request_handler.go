package http

import (
	"encoding/json"
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

// RequestHandler exposes item requests over HTTP
type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type newRequestRequest struct {
	Description string `json:"description"`
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	var req newRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Description == "" {
		writeBadRequest(w, "request description is required")
		return
	}

	request, err := h.requestSvc.CreateRequest(r.Context(), req.Description, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// ListOwnRequests handles GET /requests
func (h *RequestHandler) ListOwnRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}

	requests, err := h.requestSvc.ListOwnRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRequests(w, requests)
}

// ListAllRequests handles GET /requests/all
func (h *RequestHandler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestSvc.ListAllRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeRequests(w, requests)
}

// GetRequest handles GET /requests/{requestId}
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "requestId")
	if err != nil {
		writeBadRequest(w, "invalid request id")
		return
	}

	request, err := h.requestSvc.GetRequest(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func writeRequests(w http.ResponseWriter, requests []domain.ItemRequest) {
	if requests == nil {
		requests = []domain.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
