package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/scheduler"
	scheduler_mocks "github.com/snappyfishuk/ebay-freeagent-sync/pkg/scheduler/mocks"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
	storage_mocks "github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(handler *SettingsHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/autosync/settings/{userId}", handler.GetSettings)
	router.Put("/autosync/settings/{userId}", handler.PutSettings)
	return router
}

func TestGetSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		mockStore.On("GetSettings", mock.Anything, "user1").Return(&models.AutosyncSettings{
			UserID:        "user1",
			Enabled:       true,
			LagDays:       3,
			BankAccountID: "acct-123",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/autosync/settings/user1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.AutosyncSettings
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Enabled)
		assert.Equal(t, 3, got.LagDays)
		assert.Equal(t, "acct-123", got.BankAccount)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		mockStore.On("GetSettings", mock.Anything, "user1").Return(nil, storage.ErrSettingsNotFound)

		req := httptest.NewRequest(http.MethodGet, "/autosync/settings/user1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestPutSettings(t *testing.T) {
	t.Run("Enabled Schedules Catch-Up", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		saved := &models.AutosyncSettings{
			UserID:        "user1",
			Enabled:       true,
			LagDays:       3,
			BankAccountID: "acct-123",
		}
		mockStore.On("PutSettings", mock.Anything, mock.AnythingOfType("*models.AutosyncSettings")).Return(saved, nil)
		mockScheduler.On("ScheduleSync", mock.Anything, mock.AnythingOfType("*scheduler.SyncJob"), time.Duration(0)).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*scheduler.SyncJob)
				assert.Equal(t, "user1", job.UserID)
				assert.Equal(t, "acct-123", job.BankAccountID)
				assert.NotEmpty(t, job.From)
				assert.NotEmpty(t, job.To)
			}).
			Return(nil)

		body, _ := json.Marshal(api.AutosyncSettings{Enabled: true, LagDays: 3, BankAccount: "acct-123"})
		req := httptest.NewRequest(http.MethodPut, "/autosync/settings/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
		mockScheduler.AssertExpectations(t)
	})

	t.Run("Disabled Does Not Schedule", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		saved := &models.AutosyncSettings{UserID: "user1", LagDays: 3}
		mockStore.On("PutSettings", mock.Anything, mock.Anything).Return(saved, nil)

		body, _ := json.Marshal(api.AutosyncSettings{Enabled: false, LagDays: 3})
		req := httptest.NewRequest(http.MethodPut, "/autosync/settings/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockScheduler.AssertNotCalled(t, "ScheduleSync")
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid Lag Days", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		body, _ := json.Marshal(api.AutosyncSettings{Enabled: true, LagDays: 45, BankAccount: "acct-123"})
		req := httptest.NewRequest(http.MethodPut, "/autosync/settings/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "PutSettings")
	})

	t.Run("Enabled Requires Bank Account", func(t *testing.T) {
		mockStore := new(storage_mocks.SettingsStore)
		mockScheduler := new(scheduler_mocks.Scheduler)
		router := newRouter(NewSettingsHandler(mockStore, mockScheduler))

		body, _ := json.Marshal(api.AutosyncSettings{Enabled: true, LagDays: 3})
		req := httptest.NewRequest(http.MethodPut, "/autosync/settings/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "PutSettings")
	})
}
