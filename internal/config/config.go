package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type EncryptionClientConfig interface {
	Address() string
}

type APIClientConfig interface {
	Address() string
}

type JaegerConfig interface {
	Address() string
}

type ChatConfig interface {
	PollInterval() time.Duration
	ScrollThreshold() int
	ViewportHeight() int
	RegisterRedirectDelay() time.Duration
	HTTPTimeout() time.Duration
	SessionFile() string
}

// Load reads a .env file into the process environment. A missing file is not
// an error: every setting also has a default or comes from the real environment.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
