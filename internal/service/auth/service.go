package auth

import (
	"context"
	"errors"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/model"
	"go.uber.org/zap"
)

// SessionWriter persists the logged-in username.
type SessionWriter interface {
	Set(username string) error
}

type Service struct {
	encryption clients.EncryptionServiceClient
	auth       clients.AuthServiceClient
	session    SessionWriter
}

func NewService(
	encryption clients.EncryptionServiceClient,
	auth clients.AuthServiceClient,
	session SessionWriter,
) *Service {
	return &Service{
		encryption: encryption,
		auth:       auth,
		session:    session,
	}
}

// Login encrypts the password, submits the credentials and on success stores
// username as the local session. Returned errors are *apperrors.UserError.
func (s *Service) Login(ctx context.Context, username, password string) error {
	encrypted, err := s.encryptPassword(ctx, password)
	if err != nil {
		return err
	}

	err = s.auth.Login(ctx, model.Credentials{Username: username, Password: encrypted})
	if err != nil {
		return submitError(err, apperrors.ErrLoginFailed)
	}

	if err = s.session.Set(username); err != nil {
		logger.Error("failed to store session", zap.String("username", username), zap.Error(err))

		return apperrors.NewUserError("Failed to save session.", err)
	}

	logger.Info("logged in", zap.String("username", username))

	return nil
}

// Register validates the form locally, then encrypts and submits it.
// The session is never touched: a registered user still has to log in.
func (s *Service) Register(ctx context.Context, form model.Registration) error {
	if err := Validate(form); err != nil {
		return apperrors.NewUserError(apperrors.Display(err), err)
	}

	encrypted, err := s.encryptPassword(ctx, form.Password)
	if err != nil {
		return err
	}

	err = s.auth.Register(ctx, model.Credentials{Username: form.Username, Password: encrypted})
	if err != nil {
		return submitError(err, apperrors.ErrRegistrationFailed)
	}

	logger.Info("registered", zap.String("username", form.Username))

	return nil
}

func (s *Service) encryptPassword(ctx context.Context, password string) (string, error) {
	encrypted, err := s.encryption.Encrypt(ctx, password)
	if err != nil {
		return "", apperrors.NewUserError(apperrors.Display(apperrors.ErrEncryptionUnavailable), errors.Join(apperrors.ErrEncryptionUnavailable, err))
	}

	return encrypted, nil
}

// submitError maps a login/register failure to what the form shows: the server's
// error text, the default rejection message, or the unreachable message.
func submitError(err error, rejected error) error {
	var statusErr *rest.StatusError
	if !errors.As(err, &statusErr) {
		return apperrors.NewUserError(apperrors.Display(apperrors.ErrServerUnreachable), errors.Join(apperrors.ErrServerUnreachable, err))
	}

	message := rest.ServerMessage(err)
	if message == "" {
		message = apperrors.Display(rejected)
	}

	return apperrors.NewUserError(message, errors.Join(rejected, err))
}
