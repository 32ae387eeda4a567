package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/metrics"
)

// writeWait bounds every write to a history socket.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// watchRecipes upgrades to a WebSocket and pushes the caller's full
// history as a models.HistoryFrame on open and after every change. A read
// failure on the server side is sent as a frame with Error set, after which
// the socket is closed.
func (h *Handler) watchRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	defer h.metrics.WatcherOpened(metrics.TransportWebSocket)()
	log.Info().Int64("user_id", userID).Msg("history watcher connected")

	// Clients never send data frames; reading only surfaces the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	snapshots := h.services.RecipeService.Watch(ctx, userID)
	for {
		select {
		case <-ctx.Done():
			log.Info().Int64("user_id", userID).Msg("history watcher disconnected")
			return

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Msg("history watcher ping failed")
				return
			}

		case snapshot, ok := <-snapshots:
			if !ok {
				closeMessage := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(writeWait))
				return
			}

			frame := snapshot.Frame(app.MsgWatchFailed)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				log.Debug().Err(err).Msg("history watcher write failed")
				return
			}
			h.metrics.SnapshotPushed(metrics.TransportWebSocket)

			if frame.Error != "" {
				return
			}
		}
	}
}
