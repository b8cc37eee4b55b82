package env

import (
	"net"
	"os"
)

const (
	apiHostEnv = "API_HOST"
	apiPortEnv = "API_PORT"

	defaultAPIHost = "localhost"
	defaultAPIPort = "8080"
)

type apiClientConfig struct {
	host string
	port string
}

func NewAPIClientConfig() (*apiClientConfig, error) {
	host := os.Getenv(apiHostEnv)
	if len(host) == 0 {
		host = defaultAPIHost
	}

	port := os.Getenv(apiPortEnv)
	if len(port) == 0 {
		port = defaultAPIPort
	}

	return &apiClientConfig{host: host, port: port}, nil
}

func (c *apiClientConfig) Address() string {
	return net.JoinHostPort(c.host, c.port)
}
