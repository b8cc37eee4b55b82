package chat

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// View is the state behind the chat screen: the message list as last returned
// by the server, the pending input and the poll loop that keeps the list fresh.
//
// Every fetch replaces the whole list. Nothing is merged or deduplicated, and a
// poll may land while a send is still in flight.
type View struct {
	client   clients.ChatServiceClient
	sender   string
	interval time.Duration

	// notifyMu spans a list swap and its listener calls, so the screen
	// always ends on the same payload the view holds.
	notifyMu sync.Mutex

	mu        sync.Mutex
	messages  []model.Message
	input     string
	listeners []func([]model.Message)
	life      context.Context
	cancel    context.CancelFunc
	stopped   bool
	done      chan struct{}

	sending atomic.Bool
}

func NewView(client clients.ChatServiceClient, sender string, interval time.Duration) *View {
	return &View{
		client:   client,
		sender:   sender,
		interval: interval,
		messages: []model.Message{},
	}
}

// OnUpdate registers fn to be called with a copy of the list after every replace.
// Calls never overlap and arrive in the order the list was replaced. Listeners
// must not call Refresh or Send.
func (v *View) OnUpdate(fn func([]model.Message)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// Start fetches immediately and then every interval until ctx is done or Stop
// is called. It returns without waiting for the first fetch.
func (v *View) Start(ctx context.Context) {
	v.mu.Lock()
	if v.life != nil || v.stopped {
		v.mu.Unlock()
		return
	}
	v.life, v.cancel = context.WithCancel(ctx)
	v.done = make(chan struct{})
	life, done := v.life, v.done
	v.mu.Unlock()

	go func() {
		defer close(done)

		_ = v.Refresh(life)

		ticker := time.NewTicker(v.interval)
		defer ticker.Stop()

		for {
			select {
			case <-life.Done():
				return
			case <-ticker.C:
				_ = v.Refresh(life)
			}
		}
	}()
}

// Stop ends the poll loop and cancels every request still in flight.
// No list update is applied once Stop has returned.
func (v *View) Stop() {
	v.mu.Lock()
	v.stopped = true
	cancel, done := v.cancel, v.done
	v.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Refresh fetches the full list and replaces the local one. Failures are only
// logged and leave the list unchanged.
func (v *View) Refresh(ctx context.Context) error {
	ctx, cancel := v.bind(ctx)
	defer cancel()

	messages, err := v.client.List(ctx)
	if err != nil {
		logger.Error("error fetching messages", zap.Error(err))

		return err
	}

	v.replace(lo.Ternary(messages == nil, []model.Message{}, messages))

	return nil
}

// Send posts the current input. Blank input is ignored. A second Send while one
// is in flight fails with ErrSendInFlight. On success the input is cleared and
// the list is fetched again right away.
func (v *View) Send(ctx context.Context) error {
	content, err := v.claim()
	if err != nil || content == "" {
		return err
	}

	return v.post(ctx, content)
}

// SendAsync is Send with the request running in the background. The in-flight
// check happens before it returns; done is called exactly once unless an error
// is returned.
func (v *View) SendAsync(ctx context.Context, done func(error)) error {
	content, err := v.claim()
	if err != nil {
		return err
	}

	if content == "" {
		done(nil)
		return nil
	}

	go func() {
		done(v.post(ctx, content))
	}()

	return nil
}

func (v *View) claim() (string, error) {
	content := v.Input()
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	if !v.sending.CompareAndSwap(false, true) {
		return "", apperrors.ErrSendInFlight
	}

	return content, nil
}

// post releases the send lock before the follow-up fetch, so a slow list
// request does not block the next message.
func (v *View) post(ctx context.Context, content string) error {
	bound, cancel := v.bind(ctx)
	err := v.client.Send(bound, model.OutgoingMessage{Sender: v.sender, Content: content})
	cancel()

	if err != nil {
		v.sending.Store(false)
		logger.Error("error sending message", zap.Error(err))

		return err
	}

	v.mu.Lock()
	v.input = ""
	v.mu.Unlock()
	v.sending.Store(false)

	return v.Refresh(ctx)
}

func (v *View) Sending() bool {
	return v.sending.Load()
}

// SetInput replaces the pending input. The input is locked while a send is in
// flight.
func (v *View) SetInput(input string) error {
	if v.sending.Load() {
		return apperrors.ErrSendInFlight
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.input = input

	return nil
}

func (v *View) Input() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.input
}

func (v *View) Messages() []model.Message {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]model.Message{}, v.messages...)
}

func (v *View) Sender() string {
	return v.sender
}

func (v *View) replace(messages []model.Message) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	if v.stopped {
		v.mu.Unlock()
		return
	}
	v.messages = messages
	listeners := append([]func([]model.Message){}, v.listeners...)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(append([]model.Message{}, messages...))
	}
}

// bind ties ctx to the view lifetime so Stop cancels the request.
func (v *View) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	life := v.life
	v.mu.Unlock()

	if life == nil {
		return ctx, cancel
	}

	stop := context.AfterFunc(life, cancel)

	return ctx, func() {
		stop()
		cancel()
	}
}
