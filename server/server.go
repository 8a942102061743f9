package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const ShutdownTimeout = 10 * time.Second

func New(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}

// Run abre o listener e serve até o ctx encerrar, fazendo shutdown gracioso.
// Erro de bind (porta em uso) é retornado imediatamente.
func Run(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return Serve(ctx, srv, ln, log)
}

func Serve(ctx context.Context, srv *http.Server, ln net.Listener, log zerolog.Logger) error {
	done := make(chan struct{})
	// stop libera a goroutine de shutdown quando Serve falha sem o ctx ter encerrado.
	stop := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	err := srv.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(stop)
		<-done
		return err
	}
	<-done
	log.Info().Msg("server stopped")
	return nil
}
