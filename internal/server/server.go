package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"github.com/Sushanth145/graphql-intro/graph"
	"github.com/Sushanth145/graphql-intro/internal/config"
	"github.com/Sushanth145/graphql-intro/internal/logger"
)

const (
	Port        = 4000
	GraphQLPath = "/graphql"
)

type Server struct {
	cfg        *config.Config
	log        *zap.Logger
	variant    graph.Variant
	schema     *graphql.Schema
	httpServer *http.Server
}

func New(cfg *config.Config, log *zap.Logger, variant graph.Variant, resolver *graph.Resolver) (*Server, error) {
	schema, err := graph.NewSchema(variant, resolver,
		graphql.Logger(&logger.PanicLogger{Logger: log}),
	)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		variant: variant,
		schema:  schema,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler возвращает маршруты сервера
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(GraphQLPath, postOnly(&relay.Handler{Schema: s.schema}))
	if s.cfg.PlaygroundEnabled {
		// Страница с тестовым интерфейсом Playground
		mux.Handle("/", playground.Handler("GraphQL Playground", GraphQLPath))
	}
	return logger.Middleware(s.log, mux)
}

// Run слушает порт до отмены ctx, затем корректно завершает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logBanner()

	errCh := make(chan error, 1)
	go func() {
		// Serve блокирует до Shutdown или фатальной ошибки
		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

func (s *Server) logBanner() {
	fields := []zap.Field{zap.Stringer("variant", s.variant)}
	if ops, err := graph.Operations(s.variant); err == nil {
		for op, names := range ops {
			fields = append(fields, zap.Strings(op, names))
		}
	} else {
		s.log.Warn("cannot list operations", zap.Error(err))
	}

	s.log.Info(fmt.Sprintf("🚀 Server ready at http://localhost:%d%s", Port, GraphQLPath), fields...)
}

func postOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
