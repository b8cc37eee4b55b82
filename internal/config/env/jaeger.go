package env

import (
	"errors"
	"net"
	"os"
)

const (
	jaegerHost = "JAEGER_HOST"
	jaegerPort = "JAEGER_PORT"
)

// ErrJaegerNotConfigured means tracing should stay on the no-op tracer.
var ErrJaegerNotConfigured = errors.New("jaeger host/port not set")

type jaegerConfig struct {
	host string
	port string
}

func NewJaegerConfig() (*jaegerConfig, error) {
	host := os.Getenv(jaegerHost)
	port := os.Getenv(jaegerPort)
	if len(host) == 0 || len(port) == 0 {
		return nil, ErrJaegerNotConfigured
	}

	return &jaegerConfig{
		host: host,
		port: port,
	}, nil
}

func (c *jaegerConfig) Address() string {
	return net.JoinHostPort(c.host, c.port)
}
