package agent

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// eventBuffer bounds how many events may wait for a slow client before
	// the stream is closed.
	eventBuffer     = 64
	eventWriteLimit = 5 * time.Second
)

var errSlowSubscriber = errors.New("event subscriber fell behind")

// events upgrades the request to a websocket and forwards every facade event
// as a JSON text message until the client goes away.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// the agent API only listens on the local machine
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.events").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	// clients never send anything; CloseRead handles their close frames
	ctx := conn.CloseRead(r.Context())

	queue := make(chan models.Event, eventBuffer)
	overflow := make(chan struct{})
	var overflowOnce sync.Once

	unsubscribe := h.entities.Subscribe(func(ev models.Event) {
		select {
		case queue <- ev:
		default:
			overflowOnce.Do(func() { close(overflow) })
		}
	})
	defer unsubscribe()

	log.Debug().Str("func", "*Handler.events").Msg("event subscriber connected")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("func", "*Handler.events").Msg("event subscriber disconnected")
			return
		case <-overflow:
			log.Warn().Err(errSlowSubscriber).Str("func", "*Handler.events").Msg("closing event stream")
			conn.Close(websocket.StatusPolicyViolation, errSlowSubscriber.Error())
			return
		case ev := <-queue:
			if err := writeEvent(ctx, conn, ev); err != nil {
				log.Err(err).Str("func", "*Handler.events").Msg("error writing event")
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, eventWriteLimit)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}
