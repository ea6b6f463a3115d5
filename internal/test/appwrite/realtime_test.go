package appwrite_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

func realtimeServer(t *testing.T, gotQuery chan<- url.Values) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/realtime", func(w http.ResponseWriter, r *http.Request) {
		select {
		case gotQuery <- r.URL.Query():
		default:
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		err = conn.WriteJSON(map[string]any{
			"type": "event",
			"data": map[string]any{
				"events":    []string{"databases.default.collections.posts.documents.*.create"},
				"channels":  []string{"documents"},
				"timestamp": "2026-08-24T12:00:00.000+00:00",
				"payload":   map[string]any{"title": "hello"},
			},
		})
		if err != nil {
			return
		}

		// Hold the connection open until the client closes it.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRealtime_SubscribeDeliversEvents(t *testing.T) {
	gotQuery := make(chan url.Values, 1)
	server := realtimeServer(t, gotQuery)

	cfg := testConfig()
	cfg.Public.Endpoint = server.URL + "/v1"

	events := make(chan appwrite.Event, 1)
	sub, err := appwrite.NewRealtime(cfg).Subscribe(
		[]string{"documents", "files"},
		func(event appwrite.Event) { events <- event },
	)
	require.NoError(t, err)
	defer sub.Close()

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, []string{"documents", "files"}, sub.Channels)

	select {
	case query := <-gotQuery:
		assert.Equal(t, "test-project", query.Get("project"))
		assert.Equal(t, []string{"documents", "files"}, query["channels[]"])
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the subscription request")
	}

	select {
	case event := <-events:
		assert.Equal(t, []string{"documents"}, event.Channels)
		assert.Equal(t, "hello", event.Payload["title"])
	case <-time.After(2 * time.Second):
		t.Fatal("callback never received the event")
	}
}

func TestRealtime_SubscribeRequiresChannels(t *testing.T) {
	_, err := appwrite.NewRealtime(testConfig()).Subscribe(nil, func(appwrite.Event) {})

	assert.Error(t, err)
}

func TestRealtime_SubscribeRequiresConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Public.Endpoint = ""

	_, err := appwrite.NewRealtime(cfg).Subscribe([]string{"documents"}, func(appwrite.Event) {})

	assert.ErrorIs(t, err, config.ErrMissingEndpoint)
}
