// Package server wires the ministry runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	accessv1 "github.com/louisbranch/shepherd.church/api/gen/go/access/v1"
	ministryv1 "github.com/louisbranch/shepherd.church/api/gen/go/ministry/v1"
	notificationsv1 "github.com/louisbranch/shepherd.church/api/gen/go/notifications/v1"
	"github.com/louisbranch/shepherd.church/internal/platform/config"
	"github.com/louisbranch/shepherd.church/internal/platform/mail"
	accessservice "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/access"
	grpcmetadata "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/metadata"
	ministryservice "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/ministry"
	notificationsservice "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/notifications"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/domain"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/notify"
	ministrysqlite "github.com/louisbranch/shepherd.church/internal/services/ministry/storage/sqlite"
)

type serverEnv struct {
	DBPath string `env:"SHEPHERD_CHURCH_MINISTRY_DB_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "ministry.db")
	}
	return cfg
}

// Server hosts the ministry gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *ministrysqlite.Store
}

// New creates a configured ministry server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured ministry server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openMinistryStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	mailer := loadMailer()
	dispatcher := notify.NewDispatcher(store, mailer)
	domainService := domain.NewService(store, dispatcher)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcmetadata.UnaryServerInterceptor(nil)),
	)
	healthServer := health.NewServer()
	ministryv1.RegisterMinistryServiceServer(grpcServer, ministryservice.NewService(domainService))
	accessv1.RegisterAccessServiceServer(grpcServer, accessservice.NewService())
	notificationsv1.RegisterNotificationServiceServer(grpcServer, notificationsservice.NewService(notify.NewInbox(store)))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("ministry.v1.MinistryService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("access.v1.AccessService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("notifications.v1.NotificationService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a ministry server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("ministry server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases ministry server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close ministry store: %v", err)
		}
	}
}

func openMinistryStore(path string) (*ministrysqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := ministrysqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ministry sqlite store: %w", err)
	}
	return store, nil
}

// loadMailer builds the SMTP sender when SMTP delivery is configured.
// Without configuration the email channel stays disabled and notifications
// reach the in-app inbox only.
func loadMailer() mail.Sender {
	sender, err := mail.NewSMTPSenderFromEnv()
	if err != nil {
		log.Printf("smtp sender disabled: %v", err)
		return nil
	}
	return sender
}
