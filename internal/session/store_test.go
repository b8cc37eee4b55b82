package session

import (
	"os"
	"testing"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	logger.Init(zapcore.NewNopCore())
	os.Exit(m.Run())
}

func TestStore(t *testing.T) {
	t.Run("should report unauthenticated when no file exists", func(t *testing.T) {
		req := require.New(t)
		store := NewStore(afero.NewMemMapFs(), DefaultFile)

		username, err := store.Username()
		req.NoError(err)
		req.Empty(username)
		req.False(store.IsAuthenticated())
	})

	t.Run("should persist and read back the username", func(t *testing.T) {
		req := require.New(t)
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "home/.vupp-session")

		req.NoError(store.Set("alice"))
		req.True(store.IsAuthenticated())

		reopened := NewStore(fs, "home/.vupp-session")
		username, err := reopened.Username()
		req.NoError(err)
		req.Equal("alice", username)
	})

	t.Run("should remove the session on clear", func(t *testing.T) {
		req := require.New(t)
		fs := afero.NewMemMapFs()
		store := NewStore(fs, DefaultFile)
		req.NoError(store.Set("alice"))

		req.NoError(store.Clear())
		req.False(store.IsAuthenticated())

		exists, err := afero.Exists(fs, DefaultFile)
		req.NoError(err)
		req.False(exists)

		// clearing twice is fine
		req.NoError(store.Clear())
	})

	t.Run("should treat empty username as logout", func(t *testing.T) {
		req := require.New(t)
		store := NewStore(afero.NewMemMapFs(), DefaultFile)
		req.NoError(store.Set("alice"))

		req.NoError(store.Set(""))
		req.False(store.IsAuthenticated())
	})

	t.Run("should not authenticate on a corrupt file", func(t *testing.T) {
		req := require.New(t)
		fs := afero.NewMemMapFs()
		req.NoError(afero.WriteFile(fs, DefaultFile, []byte("{not json"), 0o600))
		store := NewStore(fs, DefaultFile)

		_, err := store.Username()
		req.Error(err)
		req.False(store.IsAuthenticated())
	})
}
