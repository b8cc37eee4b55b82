package chat

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/Mobo140/vupp-cli/internal/testutil/fakeserver"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	logger.Init(zapcore.NewNopCore())
	os.Exit(m.Run())
}

func TestClient(t *testing.T) {
	t.Run("should return nil for a null list", func(t *testing.T) {
		req := require.New(t)
		srv := fakeserver.New()
		defer srv.Close()

		messages, err := NewChatClient(rest.NewClient(srv.URL, time.Second)).List(context.Background())

		req.NoError(err)
		req.Nil(messages)
	})

	t.Run("should send then list in server order", func(t *testing.T) {
		req := require.New(t)
		srv := fakeserver.New()
		defer srv.Close()
		c := NewChatClient(rest.NewClient(srv.URL, time.Second))

		req.NoError(c.Send(context.Background(), model.OutgoingMessage{Sender: "alice", Content: "hi"}))
		srv.AddMessage("bob", "hey")

		messages, err := c.List(context.Background())
		req.NoError(err)
		req.Len(messages, 2)
		req.Equal("alice", messages[0].Sender)
		req.Equal("hi", messages[0].Content)
		req.Equal(int64(1), messages[0].ID)
		req.Equal("bob", messages[1].Sender)
		req.NotEmpty(messages[1].Timestamp)
	})

	t.Run("should return the error on a failed send", func(t *testing.T) {
		req := require.New(t)
		srv := fakeserver.New()
		defer srv.Close()
		srv.SetSendStatus(http.StatusInternalServerError)

		err := NewChatClient(rest.NewClient(srv.URL, time.Second)).Send(context.Background(), model.OutgoingMessage{Sender: "alice", Content: "hi"})

		req.Error(err)
		req.Empty(srv.Messages())
	})

	t.Run("should return the error when listing fails", func(t *testing.T) {
		req := require.New(t)
		srv := fakeserver.New()
		defer srv.Close()
		srv.SetListStatus(http.StatusInternalServerError)

		messages, err := NewChatClient(rest.NewClient(srv.URL, time.Second)).List(context.Background())

		req.Error(err)
		req.Nil(messages)
	})

	t.Run("should decode a raw server payload as is", func(t *testing.T) {
		req := require.New(t)
		srv := fakeserver.New()
		defer srv.Close()
		srv.SetListBody(`[{"id":7,"sender":"bob","content":"raw","timestamp":"2026-10-18T09:00:00"}]`)

		messages, err := NewChatClient(rest.NewClient(srv.URL, time.Second)).List(context.Background())

		req.NoError(err)
		req.Equal([]model.Message{{ID: 7, Sender: "bob", Content: "raw", Timestamp: "2026-10-18T09:00:00"}}, messages)
	})
}
