package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	handler := http.NotFoundHandler()

	tests := []struct {
		name string
		cfg  Config
		addr string
	}{
		{name: "defaults", cfg: Config{}, addr: ":8080"},
		{name: "wildcard", cfg: Config{BindAddress: "*", Port: 9000}, addr: ":9000"},
		{name: "bind address", cfg: Config{BindAddress: "172.20.10.2", Port: 80}, addr: "172.20.10.2:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(tt.cfg, handler)
			assert.Equal(t, tt.addr, srv.Addr)
			assert.NotNil(t, srv.Handler)
		})
	}
}
