package encrypt

import (
	"context"
	"errors"
	"net/http"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	"go.uber.org/zap"
)

var _ clients.EncryptionServiceClient = (*client)(nil)

var errEmptyPassword = errors.New("encryption service returned no password")

type encryptRequest struct {
	Password string `json:"password"`
}

type encryptResponse struct {
	EncryptedPassword string `json:"encrypted_password"`
}

type client struct {
	rest *rest.Client
}

func NewEncryptionClient(restClient *rest.Client) *client {
	return &client{rest: restClient}
}

func (c *client) Encrypt(ctx context.Context, password string) (string, error) {
	var resp encryptResponse
	err := c.rest.Do(ctx, http.MethodPost, "/encrypt", encryptRequest{Password: password}, &resp)
	if err != nil {
		logger.Error("failed to encrypt password", zap.Error(err))

		return "", err
	}

	if resp.EncryptedPassword == "" {
		logger.Error("failed to encrypt password", zap.Error(errEmptyPassword))

		return "", errEmptyPassword
	}

	return resp.EncryptedPassword, nil
}
