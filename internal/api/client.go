package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"restaurant-dashboard/internal/types"
)

type Client struct {
	address string
	http    *resty.Client
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnknown      = errors.New("unknown server error")
)

func NewClient(address string) *Client {
	return &Client{
		address: address,
		http:    resty.New().SetBaseURL(address),
	}
}

type loginResponse struct {
	Token      string           `json:"token"`
	User       types.User       `json:"user"`
	Restaurant types.Restaurant `json:"restaurant"`
}

// Login authenticates against the remote API and returns the operator with
// the bearer token filled in, plus the restaurant assigned to them.
func (c *Client) Login(ctx context.Context, username string, password string) (*types.User, *types.Restaurant, error) {

	var result loginResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return nil, nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		user := result.User
		user.Token = result.Token
		return &user, &result.Restaurant, nil
	case http.StatusUnauthorized:
		return nil, nil, fmt.Errorf("%w", ErrUnauthorized)
	default:
		return nil, nil, fmt.Errorf("%w: unexpected status %d", ErrUnknown, resp.StatusCode())
	}
}

type ordersResponse struct {
	Orders []types.Order `json:"orders"`
}

// FetchOrders retrieves the current order list for a restaurant. An empty
// restaurantID is not an error, the call is simply skipped. The returned
// slice is in server order, ranking is the caller's concern.
func (c *Client) FetchOrders(ctx context.Context, restaurantID string, token string) ([]types.Order, error) {

	if restaurantID == "" {
		return nil, nil
	}

	var result ordersResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get(fmt.Sprintf("/api/restaurants/%s/orders", restaurantID))
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return result.Orders, nil
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w", ErrUnauthorized)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnknown, resp.StatusCode())
	}
}

// UpdateOrderStatus moves an order to a new status. Used by the order
// management views, never by the poller.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status types.Status, token string) error {

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]string{"orderStatus": string(status)}).
		Patch(fmt.Sprintf("/api/orders/%s/status", orderID))
	if err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("%w", ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrUnknown, resp.StatusCode())
	}
}
