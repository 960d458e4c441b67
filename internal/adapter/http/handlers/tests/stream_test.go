package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/adapter/http/handlers"
	"teamboard/internal/adapter/http/middleware"
	"teamboard/internal/app/service"
	"teamboard/internal/app/taskstore"
	"teamboard/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T, handler *handlers.StreamHandler) string {
	t.Helper()

	router := gin.New()
	router.GET("/api/tasks/stream", middleware.LanguageMiddleware(), handler.StreamTasks)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http") + "/api/tasks/stream"
}

func readSnapshot(t *testing.T, conn *websocket.Conn) dto.TaskSnapshotMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg dto.TaskSnapshotMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestStreamHandler_PushesSnapshots(t *testing.T) {
	store := taskstore.New()
	taskService := service.NewTaskService(store, nil, nil, nil)
	url := newStreamServer(t, handlers.NewStreamHandler(taskService))

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readSnapshot(t, conn)
	require.Empty(t, first.Tasks)

	_, err = store.Add(domain.TaskDraft{
		Title:      "Record unboxing",
		Type:       domain.TaskTypeMedia,
		AssignedTo: domain.EntityRef{ID: 1, Name: "John Doe"},
		Channel:    &domain.EntityRef{ID: 1, Name: "Gaming"},
	})
	require.NoError(t, err)

	second := readSnapshot(t, conn)
	require.Len(t, second.Tasks, 1)
	require.Equal(t, "Record unboxing", second.Tasks[0].Title)
	require.Equal(t, "pending", second.Tasks[0].Status)

	require.True(t, store.Delete(second.Tasks[0].ID))
	third := readSnapshot(t, conn)
	require.Empty(t, third.Tasks)
}

func TestStreamHandler_UnsubscribesWhenClientLeaves(t *testing.T) {
	unsubscribed := make(chan struct{})
	subscription := new(subscriptionMock)
	subscription.On("Unsubscribe").Run(func(mock.Arguments) {
		close(unsubscribed)
	}).Once()

	serviceMock := new(taskServiceMock)
	serviceMock.On("Subscribe", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(func([]domain.Task))([]domain.Task{sampleTask()})
	}).Return(subscription).Once()
	url := newStreamServer(t, handlers.NewStreamHandler(serviceMock))

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	msg := readSnapshot(t, conn)
	require.Len(t, msg.Tasks, 1)
	require.Equal(t, uint64(3), msg.Tasks[0].ID)

	require.NoError(t, conn.Close())

	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released after the client disconnected")
	}
	serviceMock.AssertExpectations(t)
}

func TestStreamHandler_RejectsPlainHTTP(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := gin.New()
	router.GET("/api/tasks/stream", middleware.LanguageMiddleware(), handlers.NewStreamHandler(serviceMock).StreamTasks)

	rec := serve(router, http.MethodGet, "/api/tasks/stream", "")

	requireAPIError(t, rec, http.StatusBadRequest, "failed to open task stream")
	serviceMock.AssertNotCalled(t, "Subscribe", mock.Anything)
}
