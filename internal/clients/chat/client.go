package chat

import (
	"context"
	"net/http"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	"github.com/Mobo140/vupp-cli/internal/model"
	"go.uber.org/zap"
)

var _ clients.ChatServiceClient = (*client)(nil)

const messagesPath = "/api/messages"

type client struct {
	rest *rest.Client
}

func NewChatClient(restClient *rest.Client) *client {
	return &client{rest: restClient}
}

// List returns the full message list. A null body yields a nil slice.
func (c *client) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	err := c.rest.Do(ctx, http.MethodGet, messagesPath, nil, &messages)
	if err != nil {
		logger.Error("failed to fetch messages", zap.Error(err))

		return nil, err
	}

	return messages, nil
}

func (c *client) Send(ctx context.Context, msg model.OutgoingMessage) error {
	err := c.rest.Do(ctx, http.MethodPost, messagesPath, msg, nil)
	if err != nil {
		logger.Error("failed to send message", zap.Error(err))

		return err
	}

	return nil
}
