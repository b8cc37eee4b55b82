package env

import (
	"fmt"
	"time"

	goenv "github.com/Netflix/go-env"
)

type chatConfig struct {
	Poll           time.Duration `env:"POLL_INTERVAL,default=1s"`
	Threshold      int           `env:"SCROLL_THRESHOLD,default=3"`
	Height         int           `env:"VIEWPORT_HEIGHT,default=20"`
	RedirectDelay  time.Duration `env:"REGISTER_REDIRECT_DELAY,default=2s"`
	RequestTimeout time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	Session        string        `env:"SESSION_FILE,default=.vupp-session"`
}

func NewChatConfig() (*chatConfig, error) {
	var cfg chatConfig
	if _, err := goenv.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read chat config: %w", err)
	}

	if cfg.Poll <= 0 {
		return nil, fmt.Errorf("POLL_INTERVAL must be positive, got %s", cfg.Poll)
	}

	if cfg.Height < 1 {
		return nil, fmt.Errorf("VIEWPORT_HEIGHT must be at least 1, got %d", cfg.Height)
	}

	return &cfg, nil
}

func (c *chatConfig) PollInterval() time.Duration {
	return c.Poll
}

func (c *chatConfig) ScrollThreshold() int {
	return c.Threshold
}

func (c *chatConfig) ViewportHeight() int {
	return c.Height
}

func (c *chatConfig) RegisterRedirectDelay() time.Duration {
	return c.RedirectDelay
}

func (c *chatConfig) HTTPTimeout() time.Duration {
	return c.RequestTimeout
}

func (c *chatConfig) SessionFile() string {
	return c.Session
}
