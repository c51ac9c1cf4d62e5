package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"restaurant-dashboard/internal/api"
	"restaurant-dashboard/internal/auth"
	"restaurant-dashboard/internal/orders"
	"restaurant-dashboard/internal/store"
	"restaurant-dashboard/internal/types"
	"restaurant-dashboard/internal/validate"
)

type APIClient interface {
	Login(ctx context.Context, username string, password string) (*types.User, *types.Restaurant, error)
	FetchOrders(ctx context.Context, restaurantID string, token string) ([]types.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status types.Status, token string) error
}

type Scheduler interface {
	Start()
	Stop()
	Poll(ctx context.Context)
}

type HandlerSet struct {
	secret               []byte
	cookieExpiresSeconds int
	store                *store.Store
	client               APIClient
	scheduler            Scheduler
}

var (
	ErrCouldNotParseBody = errors.New("could not parse body")
	ErrAuthDataEmpty     = errors.New("login or password cannot be empty")
)

func NewHandlerSet(secret []byte, cookieExpiresSecs int, st *store.Store, client APIClient, scheduler Scheduler) *HandlerSet {
	return &HandlerSet{
		secret:               secret,
		cookieExpiresSeconds: cookieExpiresSecs,
		store:                st,
		client:               client,
		scheduler:            scheduler,
	}
}

func (h *HandlerSet) parseAuthData(body []byte) (username string, password string, err error) {

	var data struct {
		Username string `json:"login"`
		Password string `json:"password"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		return "", "", ErrCouldNotParseBody
	}

	if data.Username == "" || data.Password == "" {
		return "", "", ErrAuthDataEmpty
	}

	return data.Username, data.Password, nil
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	username, password, err := h.parseAuthData(body)
	if err != nil {
		if errors.Is(err, ErrCouldNotParseBody) {
			http.Error(w, "Could not parse body", http.StatusBadRequest)
		} else {
			http.Error(w, "Login and password cannot be empty", http.StatusBadRequest)
		}
		return
	}

	user, restaurant, err := h.client.Login(req.Context(), username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Wrong login or password", http.StatusUnauthorized)
			return
		}
		logger.Error(err)
		http.Error(w, "Could not reach delivery service", http.StatusBadGateway)
		return
	}

	h.store.SetCurrentUser(user)
	h.store.SetCurrentRestaurant(restaurant)

	err = auth.SetAuthCookie(user.Username, w, h.secret, h.cookieExpiresSeconds)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	h.scheduler.Start()

	w.Header().Set("content-type", "text/plain")
	_, err = w.Write([]byte("success"))
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func (h *HandlerSet) HandleLogout(w http.ResponseWriter, req *http.Request) {

	h.scheduler.Stop()
	h.store.Reset()
	auth.ClearAuthCookie(w)

	w.Header().Set("content-type", "text/plain")
	_, err := w.Write([]byte("success"))
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func (h *HandlerSet) handleAuthorizeUser(w http.ResponseWriter, req *http.Request) (*types.User, error) {
	username, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return nil, fmt.Errorf("authentication error")
	}

	user := h.store.CurrentUser()
	if user == nil || user.Username != username || user.Token == "" {
		http.Error(w, "Session expired",
			http.StatusUnauthorized)
		return nil, fmt.Errorf("no active session for %s", username)
	}
	return user, nil
}

// HandleGetOrders is the manual refresh path. It goes through the same
// ordering policy as the poller and nudges the scheduler afterwards so a
// refresh can surface a new order immediately, throttle permitting.
func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	restaurant := h.store.CurrentRestaurant()
	if restaurant == nil || restaurant.ID == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	fetched, err := h.client.FetchOrders(req.Context(), restaurant.ID, user.Token)
	if err != nil {
		logger.Error(err)
		http.Error(w, "Error getting data", http.StatusInternalServerError)
		return
	}

	h.scheduler.Poll(context.Background())

	sorted := orders.SortOrders(fetched)

	response, err := json.Marshal(sorted)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	_, err = w.Write(response)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func (h *HandlerSet) HandleUpdateOrderStatus(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	orderID := chi.URLParam(req, "id")
	if orderID == "" {
		http.Error(w, "Order id required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	var data struct {
		Status string `json:"orderStatus"`
	}
	err = json.Unmarshal(body, &data)
	if err != nil {
		http.Error(w, "Could not parse body",
			http.StatusUnprocessableEntity)
		return
	}

	if !validate.ValidateStatus(data.Status) {
		http.Error(w, "Invalid order status",
			http.StatusUnprocessableEntity)
		return
	}

	err = h.client.UpdateOrderStatus(req.Context(), orderID, types.Status(data.Status), user.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}
		logger.Error(err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleGetDashboard feeds the dashboard cards: order counts per status plus
// the alert state.
func (h *HandlerSet) HandleGetDashboard(w http.ResponseWriter, req *http.Request) {

	user, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	restaurant := h.store.CurrentRestaurant()
	if restaurant == nil || restaurant.ID == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	fetched, err := h.client.FetchOrders(req.Context(), restaurant.ID, user.Token)
	if err != nil {
		logger.Error(err)
		http.Error(w, "Error getting data", http.StatusInternalServerError)
		return
	}

	counts := make(map[string]int)
	for _, o := range fetched {
		counts[strings.ToLower(string(o.OrderStatus))]++
	}

	result := struct {
		Restaurant    *types.Restaurant `json:"restaurant"`
		StatusCounts  map[string]int    `json:"statusCounts"`
		NewOrderAlert bool              `json:"newOrderAlert"`
		LatestOrderID string            `json:"latestOrderId"`
	}{
		Restaurant:    restaurant,
		StatusCounts:  counts,
		NewOrderAlert: h.store.NewOrderAlert(),
		LatestOrderID: h.store.LatestOrderID(),
	}

	response, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	_, err = w.Write(response)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func (h *HandlerSet) HandleGetNotifications(w http.ResponseWriter, req *http.Request) {

	_, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	notifications := h.store.Notifications()

	response, err := json.Marshal(notifications)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	_, err = w.Write(response)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func (h *HandlerSet) HandleDeleteNotification(w http.ResponseWriter, req *http.Request) {

	_, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	id := chi.URLParam(req, "id")
	if id == "" {
		http.Error(w, "Notification id required", http.StatusBadRequest)
		return
	}

	h.store.RemoveNotification(id)
	w.WriteHeader(http.StatusOK)
}

func (h *HandlerSet) HandleClearNotifications(w http.ResponseWriter, req *http.Request) {

	_, err := h.handleAuthorizeUser(w, req)
	if err != nil {
		return
	}

	h.store.ClearNotifications()
	w.WriteHeader(http.StatusOK)
}
