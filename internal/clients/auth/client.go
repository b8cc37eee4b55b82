package auth

import (
	"context"
	"net/http"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	"github.com/Mobo140/vupp-cli/internal/model"
	"go.uber.org/zap"
)

var _ clients.AuthServiceClient = (*client)(nil)

type client struct {
	rest *rest.Client
}

func NewAuthClient(restClient *rest.Client) *client {
	return &client{rest: restClient}
}

func (c *client) Login(ctx context.Context, creds model.Credentials) error {
	err := c.rest.Do(ctx, http.MethodPost, "/api/login", creds, nil)
	if err != nil {
		logger.Error("failed to login", zap.String("username", creds.Username), zap.Error(err))

		return err
	}

	return nil
}

func (c *client) Register(ctx context.Context, creds model.Credentials) error {
	err := c.rest.Do(ctx, http.MethodPost, "/api/register", creds, nil)
	if err != nil {
		logger.Error("failed to register", zap.String("username", creds.Username), zap.Error(err))

		return err
	}

	return nil
}
