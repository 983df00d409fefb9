package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/mapping"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/scheduler"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
)

// maxLagDays caps how long a transaction may be held back before autosync
// considers it final.
const maxLagDays = 30

// catchupWindowDays is how far back the kick-off sync reaches when autosync
// is switched on.
const catchupWindowDays = 30

// SettingsHandler holds the dependencies for autosync-settings handlers.
type SettingsHandler struct {
	Store     storage.SettingsStore
	Scheduler scheduler.Scheduler
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store storage.SettingsStore, sched scheduler.Scheduler) *SettingsHandler {
	return &SettingsHandler{Store: store, Scheduler: sched}
}

// GetSettings handles the logic for retrieving a user's autosync settings.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	domainSettings, err := h.Store.GetSettings(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			http.Error(w, "Autosync settings not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve settings: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAutosyncSettings(domainSettings)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// PutSettings handles the logic for saving a user's autosync settings. When
// autosync is enabled a catch-up sync job is enqueued immediately.
func (h *SettingsHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var apiSettings api.AutosyncSettings
	if err := json.NewDecoder(r.Body).Decode(&apiSettings); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if apiSettings.LagDays < 0 || apiSettings.LagDays > maxLagDays {
		http.Error(w, fmt.Sprintf("lag_days must be between 0 and %d", maxLagDays), http.StatusBadRequest)
		return
	}
	if apiSettings.Enabled && apiSettings.BankAccount == "" {
		http.Error(w, "bank_account is required when autosync is enabled", http.StatusBadRequest)
		return
	}

	saved, err := h.Store.PutSettings(r.Context(), mapping.ToDomainAutosyncSettings(userID, &apiSettings))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save settings: %v", err), http.StatusInternalServerError)
		return
	}

	// Settings are saved either way; a failed enqueue only delays the first run.
	if saved.Enabled && h.Scheduler != nil {
		to := time.Now().UTC().AddDate(0, 0, -saved.LagDays)
		from := to.AddDate(0, 0, -catchupWindowDays)
		job := &scheduler.SyncJob{
			UserID:        saved.UserID,
			From:          from.Format("2006-01-02"),
			To:            to.Format("2006-01-02"),
			BankAccountID: saved.BankAccountID,
		}
		if err := h.Scheduler.ScheduleSync(r.Context(), job, 0); err != nil {
			log.Printf("CRITICAL: settings for %s saved but failed to enqueue catch-up sync: %v", saved.UserID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAutosyncSettings(saved)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
