package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"menuqr/internal/domain"
	"menuqr/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Stats       service.StatsServiceInterface
}

func NewHandler(restaurants service.RestaurantServiceInterface, menu service.MenuServiceInterface,
	orders service.OrderServiceInterface, stats service.StatsServiceInterface) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Menu:        menu,
		Orders:      orders,
		Stats:       stats,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/restaurant/{restaurantId}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/qrcode/{restaurantId}", h.getClientQRCode).Methods("GET")

	r.HandleFunc("/api/menu/add/{restaurantId}", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{restaurantId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{itemId:[0-9]+}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/order/{restaurantId}", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/pending/{restaurantId}", h.getPendingOrders).Methods("GET")
	r.HandleFunc("/api/orders/confirmed/{restaurantId}", h.getConfirmedOrders).Methods("GET")
	r.HandleFunc("/api/order/{orderId:[0-9]+}/confirm", h.confirmOrder).Methods("POST")
	r.HandleFunc("/api/order/{orderId:[0-9]+}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/order/{orderId:[0-9]+}", h.deleteOrder).Methods("DELETE")

	r.HandleFunc("/api/stats/today/{restaurantId}", h.getDailyStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menuqr",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	registration, err := h.Restaurants.Register(r.Context(), payload.Name, payload.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registration)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	if err := h.Restaurants.Delete(r.Context(), restaurantID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) getClientQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	png, err := h.Restaurants.ClientQRCode(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	items, err := h.Menu.List(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Price       string `json:"price"`
		Image       string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         payload.Name,
		Description:  payload.Description,
		Category:     payload.Category,
		Price:        payload.Price,
		Image:        payload.Image,
	}

	id, err := h.Menu.Add(r.Context(), item)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	if err := h.Menu.Delete(r.Context(), itemID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	var payload struct {
		TableNumber int                `json:"table_number"`
		Items       []domain.OrderLine `json:"items"`
		TotalPrice  float64            `json:"total_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order := &domain.Order{
		RestaurantID: restaurantID,
		TableNumber:  payload.TableNumber,
		Items:        payload.Items,
		TotalPrice:   payload.TotalPrice,
	}

	id, err := h.Orders.Create(r.Context(), order)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"order_id": id})
}

func (h *Handler) getPendingOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	orders, err := h.Orders.ListPending(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getConfirmedOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	orders, err := h.Orders.ListConfirmed(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	if err := h.Orders.Confirm(r.Context(), orderID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": domain.StatusConfirmed})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	if err := h.Orders.Delete(r.Context(), orderID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	status, err := h.Orders.Status(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) getDailyStats(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	stats, err := h.Stats.Daily(r.Context(), restaurantID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrConflict):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
