package clients

import (
	"context"

	"github.com/Mobo140/vupp-cli/internal/model"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . EncryptionServiceClient,AuthServiceClient,ChatServiceClient

type EncryptionServiceClient interface {
	Encrypt(ctx context.Context, password string) (string, error)
}

type AuthServiceClient interface {
	Login(ctx context.Context, creds model.Credentials) error
	Register(ctx context.Context, creds model.Credentials) error
}

type ChatServiceClient interface {
	List(ctx context.Context) ([]model.Message, error)
	Send(ctx context.Context, msg model.OutgoingMessage) error
}
