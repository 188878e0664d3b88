package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "menuqr/internal/api/http"
	"menuqr/internal/domain"
	"menuqr/internal/mocks"
	"menuqr/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	menu        *mocks.MenuServiceInterface
	orders      *mocks.OrderServiceInterface
	stats       *mocks.StatsServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		menu:        mocks.NewMenuServiceInterface(t),
		orders:      mocks.NewOrderServiceInterface(t),
		stats:       mocks.NewStatsServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.restaurants, m.menu, m.orders, m.stats)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func TestHandler_register(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"name":"Chez Nora","email":"nora@example.com"}`,
			prepareMocks: func(m handlerMocks) {
				m.restaurants.On("Register", mock.Anything, "Chez Nora", "nora@example.com").
					Return(&domain.Registration{
						TenantID:   "rest_abc123def456",
						ClientLink: "http://menuqr.test/client/rest_abc123def456",
						StaffLink:  "http://menuqr.test/staff/rest_abc123def456",
					}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"tenant_id":"rest_abc123def456"`,
		},
		{
			name:    "missing_fields",
			payload: `{"name":"","email":""}`,
			prepareMocks: func(m handlerMocks) {
				m.restaurants.On("Register", mock.Anything, "", "").
					Return(nil, service.ErrValidation).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "duplicate_email",
			payload: `{"name":"Chez Nora","email":"taken@example.com"}`,
			prepareMocks: func(m handlerMocks) {
				m.restaurants.On("Register", mock.Anything, "Chez Nora", "taken@example.com").
					Return(nil, service.ErrConflict).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/register", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getMenu(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.menu.On("List", mock.Anything, "rest_a").Return([]domain.MenuItem{
			{ID: 1, RestaurantID: "rest_a", Name: "Tagine", Price: "85.00"},
			{ID: 2, RestaurantID: "rest_a", Name: "Couscous", Price: "70.00"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/menu/rest_a", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var items []domain.MenuItem
		json.NewDecoder(recorder.Body).Decode(&items)
		assert.Len(t, items, 2)
	})

	t.Run("unknown_tenant", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.menu.On("List", mock.Anything, "rest_x").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest("GET", "/api/menu/rest_x", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_addMenuItem(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"name":"Tagine","description":"Lamb","category":"Mains","price":"85.00"}`,
			prepareMocks: func(m handlerMocks) {
				m.menu.On("Add", mock.Anything, mock.Anything).Return(3, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":3`,
		},
		{
			name:    "missing_fields",
			payload: `{"name":"Tagine"}`,
			prepareMocks: func(m handlerMocks) {
				m.menu.On("Add", mock.Anything, mock.Anything).Return(0, service.ErrValidation).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/menu/add/rest_a", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_deleteMenuItem(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menu.On("Delete", mock.Anything, 99).Return(service.ErrNotFound).Once()

	req := httptest.NewRequest("DELETE", "/api/menu/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_createOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"table_number":5,"items":[{"dish_id":1,"quantity":2,"notes":"no onions"}],"total_price":10.5}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
					return order.RestaurantID == "rest_a" && order.TableNumber == 5 && len(order.Items) == 1
				})).Return(7, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"order_id":7`,
		},
		{
			name:    "missing_items",
			payload: `{"table_number":5,"items":[]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.Anything).Return(0, service.ErrValidation).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed_items_shape",
			payload:      `{"table_number":5,"items":["just a string"]}`,
			prepareMocks: func(handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_tenant",
			payload: `{"table_number":5,"items":[{"dish_id":1,"quantity":1}]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.Anything).Return(0, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/order/rest_a", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_listOrders(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("ListPending", mock.Anything, "rest_a").Return([]domain.Order{
		{ID: 1, RestaurantID: "rest_a", Status: domain.StatusPending},
	}, nil).Once()
	m.orders.On("ListConfirmed", mock.Anything, "rest_a").Return([]domain.Order{}, nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/pending/rest_a", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)

	req = httptest.NewRequest("GET", "/api/orders/confirmed/rest_a", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}

func TestHandler_confirmOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.orders.On("Confirm", mock.Anything, 7).Return(nil).Once()

		req := httptest.NewRequest("POST", "/api/order/7/confirm", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"confirmed"`)
	})

	t.Run("unknown_order", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.orders.On("Confirm", mock.Anything, 99).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest("POST", "/api/order/99/confirm", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_orderStatus(t *testing.T) {
	router, m := setupTestRouter(t)
	m.orders.On("Status", mock.Anything, 7).Return(domain.StatusPending, nil).Once()

	req := httptest.NewRequest("GET", "/api/order/7/status", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
}

func TestHandler_deleteOrder(t *testing.T) {
	router, m := setupTestRouter(t)
	m.orders.On("Delete", mock.Anything, 7).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/order/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_dailyStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.stats.On("Daily", mock.Anything, "rest_a", "").
			Return(domain.DailyStats{TotalSales: 30.75, OrdersCount: 2}, nil).Once()

		req := httptest.NewRequest("GET", "/api/stats/today/rest_a", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total_sales":30.75`)
		assert.Contains(t, recorder.Body.String(), `"orders_count":2`)
	})

	t.Run("unknown_tenant", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.stats.On("Daily", mock.Anything, "rest_x", "").
			Return(domain.DailyStats{}, service.ErrNotFound).Once()

		req := httptest.NewRequest("GET", "/api/stats/today/rest_x", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_clientQRCode(t *testing.T) {
	router, m := setupTestRouter(t)
	m.restaurants.On("ClientQRCode", mock.Anything, "rest_a").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).Once()

	req := httptest.NewRequest("GET", "/api/qrcode/rest_a", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_deleteRestaurant(t *testing.T) {
	router, m := setupTestRouter(t)
	m.restaurants.On("Delete", mock.Anything, "rest_a").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/restaurant/rest_a", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
