package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Channel is the NOTIFY channel the content-table triggers publish on
const Channel = "site_changes"

// Listener forwards Postgres notifications into a Hub
type Listener struct {
	connStr  string
	hub      *Hub
	listener *pq.Listener
}

func NewListener(connStr string, hub *Hub) *Listener {
	return &Listener{connStr: connStr, hub: hub}
}

// Start opens the LISTEN connection and pumps notifications until ctx is cancelled
func (l *Listener) Start(ctx context.Context) error {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Warn().Err(err).Int("event", int(ev)).Msg("⚠️ Realtime listener connection problem")
		}
	}

	l.listener = pq.NewListener(l.connStr, 10*time.Second, time.Minute, reportProblem)
	if err := l.listener.Listen(Channel); err != nil {
		l.listener.Close()
		return fmt.Errorf("listen %s: %w", Channel, err)
	}

	log.Info().Str("channel", Channel).Msg("📡 Realtime listener started")
	go l.loop(ctx)
	return nil
}

func (l *Listener) loop(ctx context.Context) {
	defer l.listener.Close()

	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("📡 Realtime listener stopped")
			return

		case n := <-l.listener.Notify:
			l.handle(n)

		case <-ping.C:
			go func() {
				if err := l.listener.Ping(); err != nil {
					log.Warn().Err(err).Msg("⚠️ Realtime listener ping failed")
				}
			}()
		}
	}
}

// handle publishes one notification; nil means the connection was re-established
func (l *Listener) handle(n *pq.Notification) {
	if n == nil {
		l.hub.Publish(Change{Table: Wildcard, Action: ActionResync, At: time.Now().UTC()})
		return
	}

	ch, err := DecodeChange(n.Extra)
	if err != nil {
		log.Warn().Err(err).Str("payload", n.Extra).Msg("⚠️ Ignoring malformed change notification")
		return
	}
	l.hub.Publish(ch)
}
