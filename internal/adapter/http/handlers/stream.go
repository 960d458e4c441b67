package handlers

import (
	"net/http"
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/mapper"
	"teamboard/internal/adapter/http/middleware"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPongTimeout  = 60 * time.Second
	streamPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler pushes a full task snapshot to websocket clients on connect
// and after every mutation of the store.
type StreamHandler struct {
	taskService ports.TaskService
	now         func() time.Time
}

func NewStreamHandler(taskService ports.TaskService) *StreamHandler {
	return &StreamHandler{taskService: taskService, now: time.Now}
}

func (h *StreamHandler) StreamTasks(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		writeError(c, http.StatusBadRequest, apierrors.MsgFailOpenStream)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("failed to upgrade task stream", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		return
	}
	defer conn.Close()

	connectionID := middleware.GetRequestID(c)
	logger := zap.L().With(zap.String("connection_id", connectionID))
	logger.Info("task stream opened")

	// Only the newest snapshot matters: a slow client skips stale frames
	// instead of holding up the store.
	frames := make(chan dto.TaskSnapshotMessage, 1)
	subscription := h.taskService.Subscribe(func(snapshot []domain.Task) {
		frame := mapper.ToTaskSnapshotMessage(snapshot, h.now())
		select {
		case frames <- frame:
			return
		default:
		}
		select {
		case <-frames:
		default:
		}
		frames <- frame
	})
	defer subscription.Unsubscribe()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			logger.Info("task stream closed by client")
			return
		case frame := <-frames:
			if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
				return
			}
			if err := conn.WriteJSON(frame); err != nil {
				logger.Warn("failed to write task snapshot", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout)); err != nil {
				logger.Warn("failed to ping task stream", zap.Error(err))
				return
			}
		}
	}
}

// readUntilClosed drains client frames so control messages are processed,
// and closes done once the connection fails or the client goes away.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(streamPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
