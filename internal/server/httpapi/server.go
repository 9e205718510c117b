// Package httpapi exposes the marketplace services as the REST/JSON API the
// client talks to.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/photocards/internal/logging"
	"github.com/dmitrijs2005/photocards/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// Services bundles what the handlers call into.
type Services struct {
	Users       *services.UserService
	Listings    *services.ListingService
	Collections *services.CollectionService
	Comments    *services.CommentService
	Photos      *services.PhotoStore
}

type HTTPServer struct {
	address        string
	logger         logging.Logger
	svc            Services
	maxUploadBytes int64
}

func NewHTTPServer(address string, l logging.Logger, svc Services, maxUploadBytes int64) *HTTPServer {
	if l == nil {
		l = logging.Nop()
	}
	return &HTTPServer{
		address:        address,
		logger:         l.With("module", "http_server"),
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
