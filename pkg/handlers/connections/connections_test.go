package connections

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/api"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/models"
	"github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage"
	storage_mocks "github.com/snappyfishuk/ebay-freeagent-sync/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(handler *ConnectionsHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/connections/{userId}", handler.ListConnections)
	router.Post("/connections/{userId}", handler.CreateConnection)
	router.Delete("/connections/{userId}/{provider}", handler.DeleteConnection)
	return router
}

func TestListConnections(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		mockStore.On("ListConnections", mock.Anything, "user1").Return([]models.Connection{
			{ID: "conn-1", UserID: "user1", Provider: models.ProviderEbay},
			{ID: "conn-2", UserID: "user1", Provider: models.ProviderFreeAgent},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/connections/user1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []*api.Connection
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "EBAY", got[0].Provider)
		assert.Equal(t, "FREEAGENT", got[1].Provider)
		mockStore.AssertExpectations(t)
	})
}

func TestCreateConnection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		created := &models.Connection{ID: "conn-1", UserID: "user1", Provider: models.ProviderEbay}
		mockStore.On("CreateConnection", mock.Anything, mock.AnythingOfType("*models.Connection")).Return(created, nil)

		body, _ := json.Marshal(api.NewConnection{Provider: "EBAY", ExternalAccountId: "seller-99"})
		req := httptest.NewRequest(http.MethodPost, "/connections/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Connection
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "conn-1", got.Id)
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid Provider", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		body, _ := json.Marshal(api.NewConnection{Provider: "PAYPAL"})
		req := httptest.NewRequest(http.MethodPost, "/connections/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "CreateConnection")
	})

	t.Run("Conflict", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		mockStore.On("CreateConnection", mock.Anything, mock.Anything).Return(nil, storage.ErrConnectionExists)

		body, _ := json.Marshal(api.NewConnection{Provider: "EBAY"})
		req := httptest.NewRequest(http.MethodPost, "/connections/user1", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestDeleteConnection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		mockStore.On("DeleteConnection", mock.Anything, "user1", models.ProviderEbay).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/connections/user1/EBAY", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(storage_mocks.ConnectionStore)
		router := newRouter(NewConnectionsHandler(mockStore))

		mockStore.On("DeleteConnection", mock.Anything, "user1", models.ProviderEbay).Return(storage.ErrConnectionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/connections/user1/EBAY", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStore.AssertExpectations(t)
	})
}
