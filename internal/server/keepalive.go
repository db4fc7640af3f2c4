package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// KeepAlive serves the single liveness route polled by an external
// uptime pinger, keeping free-tier hosting from idling the bot out.
type KeepAlive struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewKeepAlive creates the keep-alive server on the given port
func NewKeepAlive(port string, logger *zap.Logger) *KeepAlive {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Liveness)

	return &KeepAlive{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Liveness answers the uptime pinger
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bot is alive!"))
}

// Start blocks serving requests until Shutdown is called
func (k *KeepAlive) Start() error {
	k.logger.Info("Keep-alive server listening", zap.String("addr", k.srv.Addr))

	if err := k.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (k *KeepAlive) Shutdown(ctx context.Context) error {
	return k.srv.Shutdown(ctx)
}
