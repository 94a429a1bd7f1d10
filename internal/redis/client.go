package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"beverage_store/internal/models"
)

type Client struct {
	rdb *redis.Client
}

// CustomerSession is the client-side session marker: a UI-gating
// heuristic mirroring what the backend reported at login, not a security
// boundary. Authorization stays server-authoritative.
type CustomerSession struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"is_admin"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart persistence. The cart is written whole on every mutation and read
// back whole; concurrent writers (two tabs on one session) race with
// last-write-wins, same as the browser storage this replaces.

func (c *Client) SaveCart(sessionID string, cart *models.Cart, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, ttl).Err()
}

// GetCart loads the stored cart. Missing or corrupt data resets to an
// empty cart instead of failing, so a bad write can never brick a session.
func (c *Client) GetCart(sessionID string) (*models.Cart, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		c.rdb.Del(ctx, "cart:"+sessionID)
		return &models.Cart{}, nil
	}

	return &cart, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Session marker management. The TTL enforces the 24-hour validity
// heuristic; an expired marker simply disappears.

func (c *Client) SetCustomerSession(sessionID string, session *CustomerSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetCustomerSession(sessionID string) (*CustomerSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session CustomerSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteCustomerSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
