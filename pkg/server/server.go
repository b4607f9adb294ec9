package server

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultPort = 8080

	readHeaderTimeout = 10 * time.Second
)

type Config struct {
	// Port is the TCP port to listen on (8080 by default)
	Port int `toml:"port"`
	// BindAddress restricts the listener to one interface, "*" or empty listens on all of them
	BindAddress string `toml:"bind_address"`
	// SessionSecret signs viewer cookies
	SessionSecret string `toml:"session_secret"`
}

type Server struct {
	http.Server
}

func New(cfg Config, handler http.Handler) *Server {
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}

	bindAddress := cfg.BindAddress
	if bindAddress == "*" {
		bindAddress = ""
	}

	srv := Server{}

	srv.Addr = fmt.Sprintf("%s:%d", bindAddress, port)
	srv.Handler = handler
	srv.ReadHeaderTimeout = readHeaderTimeout
	log.Debugf("using address: %s", srv.Addr)

	return &srv
}
