package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Mobo140/platform_common/pkg/logger"
	authclient "github.com/Mobo140/vupp-cli/internal/clients/auth"
	chatclient "github.com/Mobo140/vupp-cli/internal/clients/chat"
	"github.com/Mobo140/vupp-cli/internal/clients/encrypt"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/router"
	authsvc "github.com/Mobo140/vupp-cli/internal/service/auth"
	"github.com/Mobo140/vupp-cli/internal/session"
	"github.com/Mobo140/vupp-cli/internal/testutil/fakeserver"
	"github.com/gookit/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	logger.Init(zapcore.NewNopCore())
	color.Enable = false
	os.Exit(m.Run())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

type harness struct {
	app     *App
	srv     *fakeserver.Server
	session *session.Store
	in      *io.PipeWriter
	out     *syncBuffer
	done    chan error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	srv := fakeserver.New()
	t.Cleanup(srv.Close)

	restClient := rest.NewClient(srv.URL, time.Second)
	store := session.NewStore(afero.NewMemMapFs(), session.DefaultFile)
	svc := authsvc.NewService(encrypt.NewEncryptionClient(restClient), authclient.NewAuthClient(restClient), store)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	out := &syncBuffer{}
	a := New(store, svc, chatclient.NewChatClient(restClient), Settings{
		PollInterval:    20 * time.Millisecond,
		ViewportHeight:  10,
		ScrollThreshold: 2,
	}, pr, out)

	return &harness{app: a, srv: srv, session: store, in: pw, out: out, done: make(chan error, 1)}
}

func (h *harness) start(route router.Route) {
	go func() { h.done <- h.app.Run(context.Background(), route) }()
}

func (h *harness) typeLines(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := io.WriteString(h.in, line+"\n")
		require.NoError(t, err)
	}
}

func (h *harness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
		return nil
	}
}

func (h *harness) eventuallyOutput(t *testing.T, substr string) {
	t.Helper()
	require.Eventually(t, func() bool { return strings.Contains(h.out.String(), substr) },
		2*time.Second, 10*time.Millisecond, "output never contained %q", substr)
}

func TestApp_LoginAndChat(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.srv.AddUser("alice", "secret1")
	h.srv.AddMessage("bob", "hi from bob")

	h.start(router.Root)
	h.typeLines(t, "alice", "secret1")

	h.eventuallyOutput(t, "bob: hi from bob")
	username, err := h.session.Username()
	req.NoError(err)
	req.Equal("alice", username)

	h.typeLines(t, "hello everyone")
	req.Eventually(func() bool { return len(h.srv.Messages()) == 2 }, 2*time.Second, 10*time.Millisecond)
	h.eventuallyOutput(t, "> hello everyone")

	h.typeLines(t, cmdQuit)
	req.NoError(h.wait(t))
	req.Equal([]router.Route{router.Login, router.Chat}, h.app.History())
	req.Equal("alice", h.srv.Messages()[1].Sender)
}

func TestApp_EncryptionDown(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.srv.AddUser("alice", "secret1")
	h.srv.SetEncryptStatus(http.StatusInternalServerError)

	h.start(router.Login)
	h.typeLines(t, "alice", "secret1")
	h.eventuallyOutput(t, "Failed to connect to encryption service.")

	_ = h.in.Close()
	req.NoError(h.wait(t))
	req.Zero(h.srv.LoginCalls.Load())
	req.False(h.session.IsAuthenticated())
}

func TestApp_WrongPassword(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	h.srv.AddUser("alice", "secret1")

	h.start(router.Login)
	h.typeLines(t, "alice", "nope-nope")
	h.eventuallyOutput(t, "Invalid password.")

	_ = h.in.Close()
	req.NoError(h.wait(t))
	req.False(h.session.IsAuthenticated())
	req.Equal([]router.Route{router.Login}, h.app.History())
}

func TestApp_Logout(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	req.NoError(h.session.Set("alice"))

	h.start(router.Root)
	h.eventuallyOutput(t, "signed in as alice")

	h.typeLines(t, cmdLogout)
	h.eventuallyOutput(t, "Welcome back")
	req.False(h.session.IsAuthenticated())

	_ = h.in.Close()
	req.NoError(h.wait(t))
	req.Equal([]router.Route{router.Chat, router.Login}, h.app.History())
}

func TestApp_Register(t *testing.T) {
	t.Run("should validate before any network call", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)

		h.start(router.Register)
		h.typeLines(t, "al", "secret1", "secret1")
		h.eventuallyOutput(t, "Username must be at least 3 characters long.")
		h.typeLines(t, "alice", "123", "123")
		h.eventuallyOutput(t, "Password must be at least 6 characters long.")
		h.typeLines(t, "alice", "secret1", "secret2")
		h.eventuallyOutput(t, "Passwords do not match.")

		_ = h.in.Close()
		req.NoError(h.wait(t))
		req.Zero(h.srv.EncryptCalls.Load())
		req.Zero(h.srv.RegisterCalls.Load())
	})

	t.Run("should redirect to login without logging in", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)

		h.start(router.Register)
		h.typeLines(t, "carol", "secret1", "secret1")
		h.eventuallyOutput(t, "Registration successful! Redirecting to login...")
		h.eventuallyOutput(t, "Welcome back")
		req.False(h.session.IsAuthenticated())

		h.typeLines(t, "carol", "secret1")
		h.eventuallyOutput(t, "signed in as carol")
		h.typeLines(t, cmdQuit)

		req.NoError(h.wait(t))
		req.Equal([]router.Route{router.Register, router.Login, router.Chat}, h.app.History())
	})
}

func TestApp_Guards(t *testing.T) {
	t.Run("should send a logged in user from login to chat", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)
		req.NoError(h.session.Set("alice"))

		h.start(router.Login)
		h.eventuallyOutput(t, "signed in as alice")
		h.typeLines(t, cmdQuit)

		req.NoError(h.wait(t))
		req.Equal([]router.Route{router.Chat}, h.app.History())
	})

	t.Run("should send a logged out user from chat to login", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)

		h.start(router.Chat)
		h.eventuallyOutput(t, "Welcome back")
		_ = h.in.Close()

		req.NoError(h.wait(t))
		req.Equal([]router.Route{router.Login}, h.app.History())
	})
}

func TestApp_Prefilled(t *testing.T) {
	t.Run("should fail the command on bad credentials", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)

		err := h.app.WithCredentials("ghost", "secret1", "").Run(context.Background(), router.Login)

		req.ErrorIs(err, apperrors.ErrLoginFailed)
		req.Contains(h.out.String(), "User not found.")
	})
}

func TestApp_PrintMessages(t *testing.T) {
	t.Run("should require a session", func(t *testing.T) {
		h := newHarness(t)
		require.ErrorIs(t, h.app.PrintMessages(context.Background()), apperrors.ErrNotAuthenticated)
	})

	t.Run("should print the list as a table", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)
		req.NoError(h.session.Set("alice"))
		h.srv.AddMessage("bob", "table row")

		req.NoError(h.app.PrintMessages(context.Background()))
		req.Contains(h.out.String(), "SENDER")
		req.Contains(h.out.String(), "table row")
	})

	t.Run("should report who is logged in", func(t *testing.T) {
		req := require.New(t)
		h := newHarness(t)

		_, err := h.app.WhoAmI()
		req.ErrorIs(err, apperrors.ErrNotAuthenticated)

		req.NoError(h.session.Set("alice"))
		username, err := h.app.WhoAmI()
		req.NoError(err)
		req.Equal("alice", username)
	})
}
