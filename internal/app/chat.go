package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Mobo140/platform_common/pkg/logger"
	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/Mobo140/vupp-cli/internal/router"
	"github.com/Mobo140/vupp-cli/internal/service/chat"
	"github.com/Mobo140/vupp-cli/internal/ui"
	"go.uber.org/zap"
)

const (
	cmdQuit   = "/quit"
	cmdLogout = "/logout"
	cmdUp     = "/up"
	cmdDown   = "/down"

	clearScreen = "\033[H\033[2J"
)

// chatScreen owns the poll loop for as long as it is shown. Leaving the screen
// stops the loop and cancels whatever request is still running.
func (a *App) chatScreen(ctx context.Context) (router.Route, error) {
	username, err := a.session.Username()
	if err != nil {
		return router.None, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := chat.NewView(a.chat, username, a.settings.PollInterval)
	scr := &chatDisplay{
		out:      a.out,
		username: username,
		viewport: ui.NewViewport(a.settings.ViewportHeight, a.settings.ScrollThreshold),
		renderer: ui.NewRenderer(username),
	}

	// stop the view first so pending sends are cancelled before we wait on them
	var sends sync.WaitGroup
	defer sends.Wait()

	view.OnUpdate(scr.update)
	view.Start(ctx)
	defer view.Stop()

	scr.draw()

	lines := a.readLines()
	for {
		select {
		case <-ctx.Done():
			return router.None, nil
		case line, ok := <-lines:
			if !ok {
				return router.None, nil
			}

			switch strings.TrimSpace(line) {
			case cmdQuit:
				return router.None, nil
			case cmdLogout:
				if err = a.session.Clear(); err != nil {
					return router.None, err
				}
				logger.Info("logged out", zap.String("username", username))

				return router.Root, nil
			case cmdUp:
				scr.scroll(-scr.viewport.Height())
			case cmdDown:
				scr.scroll(scr.viewport.Height())
			default:
				if err = view.SetInput(line); err != nil {
					scr.notice("Still sending the previous message...")
					continue
				}

				sends.Add(1)
				if err = view.SendAsync(ctx, func(error) { sends.Done() }); err != nil {
					sends.Done()
					if errors.Is(err, apperrors.ErrSendInFlight) {
						scr.notice("Still sending the previous message...")
					}
				}
			}
		}
	}
}

// chatDisplay redraws the whole terminal on every change.
type chatDisplay struct {
	mu       sync.Mutex
	out      io.Writer
	username string
	viewport *ui.Viewport
	renderer *ui.Renderer
	status   string
}

func (d *chatDisplay) update(messages []model.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.viewport.SetContent(d.renderer.Lines(messages))
	d.drawLocked()
}

func (d *chatDisplay) scroll(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 0 {
		d.viewport.ScrollUp(-n)
	} else {
		d.viewport.ScrollDown(n)
	}
	d.drawLocked()
}

func (d *chatDisplay) notice(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.status = status
	d.drawLocked()
}

func (d *chatDisplay) draw() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.drawLocked()
}

func (d *chatDisplay) drawLocked() {
	var b strings.Builder

	b.WriteString(clearScreen)
	b.WriteString(ui.HeaderStyle.Render(" WhatsVUpp ") + " signed in as " + d.username + "\n\n")
	for _, line := range d.viewport.Visible() {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	if d.status != "" {
		b.WriteString(ui.NoticeStyle.Render(d.status) + "\n")
		d.status = ""
	}
	fmt.Fprintf(&b, "%s %s %s %s | type a message: ", cmdUp, cmdDown, cmdLogout, cmdQuit)

	_, _ = d.out.Write([]byte(b.String()))
}
