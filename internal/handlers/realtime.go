package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

type subscribeRequest struct {
	Channels []string `json:"channels" binding:"required,min=1"`
}

// RealtimeHandler manages server-side realtime subscriptions. Events are
// logged as they arrive; the handler keeps the open subscriptions so they
// can be torn down again.
type RealtimeHandler struct {
	realtime *appwrite.Realtime

	mu   sync.Mutex
	subs map[string]*appwrite.Subscription
}

func NewRealtimeHandler(realtime *appwrite.Realtime) *RealtimeHandler {
	return &RealtimeHandler{
		realtime: realtime,
		subs:     make(map[string]*appwrite.Subscription),
	}
}

// Subscribe godoc
// @Summary     Open a realtime subscription
// @Description Subscribes the server to the given realtime channels and returns the subscription handle
// @Tags        realtime
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body subscribeRequest true "Channels to subscribe to"
// @Success     201 {object} models.SubscriptionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /realtime/subscriptions [post]
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
		return
	}

	sub, err := h.realtime.Subscribe(req.Channels, func(event appwrite.Event) {
		log.Printf("realtime event %v on channels %v", event.Events, event.Channels)
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to subscribe",
			Message: err.Error(),
		})
		return
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	c.JSON(http.StatusCreated, models.SubscriptionResponse{
		SubscriptionID: sub.ID,
		Channels:       sub.Channels,
	})
}

// Unsubscribe godoc
// @Summary     Close a realtime subscription
// @Description Closes a previously opened subscription
// @Tags        realtime
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       subscription_id path string true "Subscription ID"
// @Success     204 "closed"
// @Failure     404 {object} models.ErrorResponse
// @Router      /realtime/subscriptions/{subscription_id} [delete]
func (h *RealtimeHandler) Unsubscribe(c *gin.Context) {
	id := c.Param("subscription_id")

	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "subscription not found"})
		return
	}

	if err := sub.Close(); err != nil {
		log.Printf("Warning: failed to close subscription %s: %v", id, err)
	}

	c.Status(http.StatusNoContent)
}
