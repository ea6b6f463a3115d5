package appwrite

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Event is one realtime notification as delivered by the backend.
type Event struct {
	Events    []string       `json:"events"`
	Channels  []string       `json:"channels"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

type realtimeMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Subscription is one live channel registration. Close tears down the
// underlying connection and stops event delivery.
type Subscription struct {
	ID       string
	Channels []string

	conn *websocket.Conn
}

func (s *Subscription) Close() error {
	return s.conn.Close()
}

// Realtime opens websocket subscriptions against the backend's realtime
// endpoint. The Go server SDK ships no realtime transport, so the wire
// protocol is spoken here directly.
type Realtime struct {
	cfg *config.Config
}

func NewRealtime(cfg *config.Config) *Realtime {
	return &Realtime{cfg: cfg}
}

// Subscribe registers callback for events on the given channels and returns
// the subscription handle. The callback runs on the subscription's reader
// goroutine; delivery stops when the subscription is closed or the
// connection drops.
func (r *Realtime) Subscribe(channels []string, callback func(Event)) (*Subscription, error) {
	if len(channels) == 0 {
		return nil, errors.New("at least one channel is required")
	}
	if r.cfg.Public.Endpoint == "" {
		return nil, config.ErrMissingEndpoint
	}
	if r.cfg.Public.ProjectID == "" {
		return nil, config.ErrMissingProjectID
	}

	endpoint, err := url.Parse(strings.TrimRight(r.cfg.Public.Endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	switch endpoint.Scheme {
	case "https":
		endpoint.Scheme = "wss"
	case "http":
		endpoint.Scheme = "ws"
	}
	endpoint.Path += "/realtime"

	query := endpoint.Query()
	query.Set("project", r.cfg.Public.ProjectID)
	for _, channel := range channels {
		query.Add("channels[]", channel)
	}
	endpoint.RawQuery = query.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to realtime endpoint: %w", err)
	}

	sub := &Subscription{
		ID:       uuid.NewString(),
		Channels: channels,
		conn:     conn,
	}

	go func() {
		for {
			var msg realtimeMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type != "event" {
				continue
			}
			var event Event
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				continue
			}
			callback(event)
		}
	}()

	return sub, nil
}
