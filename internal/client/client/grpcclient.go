package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	pb "github.com/dmitrijs2005/bowlsignup/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.BowlerServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewBowlerClient dials endpointURL. Extra options are appended after the
// defaults (insecure transport and the token interceptor).
func NewBowlerClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOptions: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBowlerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Add(ctx context.Context, bowler models.Bowler) (string, error) {

	doc, err := pb.BowlerToStruct(bowler)
	if err != nil {
		return "", err
	}

	resp, err := s.client.AddBowler(ctx, doc)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetValue(), nil
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {

	_, err := s.client.DeleteBowler(ctx, wrapperspb.String(id))
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) BatchDelete(ctx context.Context, ids []string) error {

	_, err := s.client.BatchDeleteBowlers(ctx, pb.IDsToList(ids))
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Subscribe(ctx context.Context, onNext func([]models.Bowler), onError func(error)) func() {

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	fail := func(err error) {
		if ctx.Err() != nil {
			return
		}
		onError(fmt.Errorf("%w: %w", common.ErrSubscriptionFailed, err))
	}

	go func() {
		defer close(done)

		stream, err := s.client.SubscribeBowlers(ctx, &emptypb.Empty{})
		if err != nil {
			fail(s.mapError(err))
			return
		}

		for {
			msg, err := stream.Recv()
			if err != nil {
				// io.EOF means the server closed the feed, which is a failure too
				fail(s.mapError(err))
				return
			}

			snapshot, err := pb.ListToSnapshot(msg)
			if err != nil {
				fail(err)
				return
			}

			if ctx.Err() != nil {
				return
			}
			onNext(snapshot)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (s *GRPCClient) Login(ctx context.Context, password []byte) (string, error) {

	resp, err := s.client.Login(ctx, wrapperspb.Bytes(password))
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetValue())
	return resp.GetValue(), nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Export(ctx context.Context) (string, error) {

	resp, err := s.client.ExportBowlers(ctx, &emptypb.Empty{})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetValue(), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	_, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
