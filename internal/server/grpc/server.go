// Package grpc exposes the bowler services over gRPC.
package grpc

import (
	"context"
	"net"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	pb "github.com/dmitrijs2005/bowlsignup/internal/proto"
	"github.com/dmitrijs2005/bowlsignup/internal/server/feed"
	"google.golang.org/grpc"
)

// BowlerStore is the collection the handlers read and write.
type BowlerStore interface {
	Add(ctx context.Context, bowler models.Bowler) (string, error)
	Delete(ctx context.Context, id string) error
	BatchDelete(ctx context.Context, ids []string) error
	Subscribe(ctx context.Context) (<-chan feed.Snapshot, func(), error)
}

// Authenticator issues and checks admin tokens.
type Authenticator interface {
	Login(ctx context.Context, password []byte) (string, error)
	Authorize(token string) (string, error)
}

// Exporter produces a download link for the current list.
type Exporter interface {
	Export(ctx context.Context) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedBowlerServiceServer
	address  string
	bowlers  BowlerStore
	admin    Authenticator
	exporter Exporter
	logger   logging.Logger

	// shutdown is closed when the server stops so open subscriptions end
	// and GracefulStop can return.
	shutdown     chan struct{}
	shutdownOnce sync.Once
}

func NewGRPCServer(a string, l logging.Logger, bowlers BowlerStore, admin Authenticator, exporter Exporter) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		bowlers:  bowlers,
		admin:    admin,
		exporter: exporter,
		shutdown: make(chan struct{}),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve runs the gRPC server on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterBowlerServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.shutdownOnce.Do(func() { close(s.shutdown) })
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
