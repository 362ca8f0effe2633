package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/deskpilot/deskpilot/internal/helpers"
	"github.com/deskpilot/deskpilot/pkg/events"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wssUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Local backend; browsers on the same machine are the audience.
		return true
	},
}

// Events streams operation events over a websocket until the client leaves.
func (a *Api) Events(c *gin.Context) {
	w, r := c.Writer, c.Request
	lock := &sync.Mutex{}

	conn, err := wssUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}
	defer conn.Close()

	id, ch := a.Hub.Subscribe()
	defer a.Hub.Unsubscribe(id)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	go writeEvents(ctx, ch, conn, lock)

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	go func() {
		for {
			select {
			case <-pingTicker.C:
				lock.Lock()
				err := conn.WriteMessage(websocket.PingMessage, []byte{})
				lock.Unlock()

				if err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	helpers.LogIfError(conn.SetReadDeadline(time.Now().Add(60 * time.Second)))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err = conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warn("websocket closed unexpectedly", zap.Error(err))
			}
			break
		}
	}
}

func writeEvents(ctx context.Context, ch chan events.Event, conn *websocket.Conn, lock *sync.Mutex) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}

			data, err := event.ToJSON()
			if err != nil {
				logger.Log.Error("failed to serialize event", zap.Error(err))
				continue
			}

			lock.Lock()
			err = conn.WriteMessage(websocket.TextMessage, data)
			lock.Unlock()

			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
