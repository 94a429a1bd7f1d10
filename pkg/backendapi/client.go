package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"beverage_store/internal/models"
)

// Client talks to the dynamic-pricing backend. Auth tokens arrive as
// cookies, so the client keeps a jar the way a browser origin would; one
// running client is one customer session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// ClearSession drops all backend auth cookies.
func (c *Client) ClearSession() {
	jar, _ := cookiejar.New(nil)
	c.HTTPClient.Jar = jar
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}, allowRefresh bool) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(respBody, &detail) == nil {
			apiErr.Detail = detail.Detail
		}

		// One transparent re-authentication attempt before surfacing a
		// 401, never for the refresh call itself. A failed refresh drops
		// the stale cookies so the caller can redirect to login.
		if resp.StatusCode == http.StatusUnauthorized && allowRefresh && path != "/auth/refresh" {
			if refreshErr := c.Refresh(ctx); refreshErr == nil {
				return c.doRequest(ctx, method, path, body, out, false)
			}
			c.ClearSession()
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Login authenticates against the backend and stores its session cookies.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp, false)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges the refresh cookie for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodPost, "/auth/refresh", nil, nil, false)
}

// GetMenu fetches all menu items, accepting both the bare-array and the
// pagination-envelope response shapes.
func (c *Client) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	var page models.MenuPage
	if err := c.doRequest(ctx, http.MethodGet, "/menu", nil, &page, true); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.doRequest(ctx, http.MethodGet, "/menu/item?item_id="+url.QueryEscape(itemID), nil, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, req models.MenuItemCreate) error {
	return c.doRequest(ctx, http.MethodPost, "/menu", req, nil, true)
}

func (c *Client) UpdateMenuItem(ctx context.Context, itemID string, req models.MenuItemUpdate) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.doRequest(ctx, http.MethodPatch, "/menu?item_id="+url.QueryEscape(itemID), req, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, itemID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/menu?item_id="+url.QueryEscape(itemID), nil, nil, true)
}

// GetCoefficientHistory fetches an item's coefficient change log via the
// authenticated endpoint. Order of entries is not guaranteed by the
// backend; callers sort.
func (c *Client) GetCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error) {
	var logs []models.CoefficientLog
	if err := c.doRequest(ctx, http.MethodGet, "/coefficient/history?item_id="+url.QueryEscape(itemID), nil, &logs, true); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetPublicCoefficientHistory is the unauthenticated variant used by the
// ticker and storefront graphs.
func (c *Client) GetPublicCoefficientHistory(ctx context.Context, itemID string) ([]models.CoefficientLog, error) {
	var logs []models.CoefficientLog
	if err := c.doRequest(ctx, http.MethodGet, "/coefficient/public/history?item_id="+url.QueryEscape(itemID), nil, &logs, true); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.OrderCreate) (*models.OrderSimple, error) {
	var order models.OrderSimple
	if err := c.doRequest(ctx, http.MethodPost, "/order", req, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.doRequest(ctx, http.MethodGet, "/order?order_id="+url.QueryEscape(orderID), nil, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doRequest(ctx, http.MethodGet, "/orders", nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	body := map[string]models.OrderStatus{"status": status}
	if err := c.doRequest(ctx, http.MethodPatch, "/order/status?order_id="+url.QueryEscape(orderID), body, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}
