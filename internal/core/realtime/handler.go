package realtime

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	hub       *Hub
	allowed   map[string]bool
	heartbeat time.Duration
}

// NewHandler serves the SSE feed; allowed restricts which tables may be watched
func NewHandler(hub *Hub, allowed []string) *Handler {
	m := make(map[string]bool, len(allowed))
	for _, t := range allowed {
		m[t] = true
	}
	return &Handler{hub: hub, allowed: m, heartbeat: 25 * time.Second}
}

// ParseTables splits "a, b" and rejects tables that are not allowed
func (h *Handler) ParseTables(raw string) ([]string, error) {
	var tables []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if t != Wildcard && !h.allowed[t] {
			return nil, fmt.Errorf("unknown table: %s", t)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Stream godoc
// @Summary Realtime change feed
// @Description Server-Sent Events of {table, action, id} for content table changes
// @Tags Realtime
// @Produce text/event-stream
// @Param tables query string false "Comma-separated table names (default all)"
// @Success 200 {object} Change
// @Failure 400 {object} map[string]interface{}
// @Router /realtime [get]
func (h *Handler) Stream(c *fiber.Ctx) error {
	tables, err := h.ParseTables(c.Query("tables"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	sub := h.hub.Subscribe(tables...)
	log.Debug().Str("subscription", sub.ID.String()).Strs("tables", sub.Tables).Msg("realtime client connected")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(sub)

		heartbeat := time.NewTicker(h.heartbeat)
		defer heartbeat.Stop()

		fmt.Fprintf(w, "retry: 3000\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		for {
			select {
			case ch, ok := <-sub.C:
				if !ok {
					return
				}
				if err := writeEvent(w, ch); err != nil {
					return
				}
			case <-heartbeat.C:
				fmt.Fprintf(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					log.Debug().Str("subscription", sub.ID.String()).Msg("realtime client disconnected")
					return
				}
			}
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, ch Change) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ch.Action, data)
	return w.Flush()
}
