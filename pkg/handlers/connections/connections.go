package connections

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/mapping"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
)

// ConnectionsHandler holds the dependencies for linked-account handlers.
type ConnectionsHandler struct {
	Store storage.ConnectionStore
}

// NewConnectionsHandler creates a new ConnectionsHandler.
func NewConnectionsHandler(store storage.ConnectionStore) *ConnectionsHandler {
	return &ConnectionsHandler{Store: store}
}

func validProvider(p string) bool {
	switch models.Provider(p) {
	case models.ProviderEbay, models.ProviderFreeAgent:
		return true
	}
	return false
}

// ListConnections handles the logic for retrieving a user's linked accounts.
func (h *ConnectionsHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	domainConns, err := h.Store.ListConnections(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve connections: %v", err), http.StatusInternalServerError)
		return
	}

	apiConns := make([]*api.Connection, len(domainConns))
	for i, conn := range domainConns {
		apiConns[i] = mapping.ToApiConnection(&conn)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiConns); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateConnection handles the logic for recording a newly linked account.
func (h *ConnectionsHandler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var newConn api.NewConnection
	if err := json.NewDecoder(r.Body).Decode(&newConn); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if !validProvider(newConn.Provider) {
		http.Error(w, "provider must be EBAY or FREEAGENT", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateConnection(r.Context(), mapping.ToDomainNewConnection(userID, &newConn))
	if err != nil {
		if errors.Is(err, storage.ErrConnectionExists) {
			http.Error(w, "Connection for this provider already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create connection: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiConnection(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteConnection handles the logic for unlinking an account.
func (h *ConnectionsHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	provider := chi.URLParam(r, "provider")

	if !validProvider(provider) {
		http.Error(w, "provider must be EBAY or FREEAGENT", http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteConnection(r.Context(), userID, models.Provider(provider)); err != nil {
		if errors.Is(err, storage.ErrConnectionNotFound) {
			http.Error(w, "Connection not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete connection: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
