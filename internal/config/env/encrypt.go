package env

import (
	"net"
	"os"
)

const (
	encryptHostEnv = "ENCRYPT_HOST"
	encryptPortEnv = "ENCRYPT_PORT"

	defaultEncryptHost = "localhost"
	defaultEncryptPort = "8000"
)

type encryptionClientConfig struct {
	host string
	port string
}

func NewEncryptionClientConfig() (*encryptionClientConfig, error) {
	host := os.Getenv(encryptHostEnv)
	if len(host) == 0 {
		host = defaultEncryptHost
	}

	port := os.Getenv(encryptPortEnv)
	if len(port) == 0 {
		port = defaultEncryptPort
	}

	return &encryptionClientConfig{host: host, port: port}, nil
}

func (c *encryptionClientConfig) Address() string {
	return net.JoinHostPort(c.host, c.port)
}
