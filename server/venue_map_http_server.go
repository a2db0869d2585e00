package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type VenueMapHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewVenueMapHttpServer(router *Router, muxRouter *mux.Router, port string) *VenueMapHttpServer {
	return &VenueMapHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":" + port,
	}
}

// Start registers the routes and serves until SIGINT/SIGTERM or ctx is done,
// then shuts down gracefully.
func (s *VenueMapHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[VenueMapHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case <-signalCtx.Done():
	}

	log.Println("[VenueMapHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("[VenueMapHttpServer] Server exiting")
	return nil
}
