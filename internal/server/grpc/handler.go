package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	pb "github.com/dmitrijs2005/bowlsignup/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) AddBowler(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {

	b, err := pb.StructToBowler(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	candidate := models.Candidate{Name: b.Name, Email: b.Email, Phone: b.Phone, OptedIn: b.OptedIn}
	if err := candidate.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	id, err := s.bowlers.Add(ctx, b)
	if err != nil {
		s.logger.Error(ctx, "add failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return wrapperspb.String(id), nil
}

func (s *GRPCServer) DeleteBowler(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {

	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing id")
	}

	err := s.bowlers.Delete(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "not found")
		}
		s.logger.Error(ctx, "delete failed", "id", req.GetValue(), "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) BatchDeleteBowlers(ctx context.Context, req *structpb.ListValue) (*emptypb.Empty, error) {

	ids, err := pb.ListToIDs(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.bowlers.BatchDelete(ctx, ids); err != nil {
		s.logger.Error(ctx, "batch delete failed", "count", len(ids), "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) SubscribeBowlers(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.ListValue]) error {
	ctx := stream.Context()

	ch, cancel, err := s.bowlers.Subscribe(ctx)
	if err != nil {
		s.logger.Error(ctx, "subscribe failed", "error", err)
		return status.Error(codes.Unavailable, "feed unavailable")
	}
	defer cancel()

	s.logger.Debug(ctx, "subscriber attached")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.shutdown:
			return status.Error(codes.Unavailable, "server shutting down")
		case snap, ok := <-ch:
			if !ok {
				return status.Error(codes.Unavailable, "feed closed")
			}
			msg, err := pb.SnapshotToList(snap)
			if err != nil {
				return status.Error(codes.Internal, err.Error())
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func (s *GRPCServer) Login(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {

	token, err := s.admin.Login(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return wrapperspb.String(token), nil
}

func (s *GRPCServer) ExportBowlers(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {

	url, err := s.exporter.Export(ctx)
	if err != nil {
		s.logger.Error(ctx, "export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return wrapperspb.String(url), nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}
