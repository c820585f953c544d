package grpc

import (
	"context"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	pb "github.com/dmitrijs2005/bowlsignup/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// adminMethods require a valid access token.
var adminMethods = map[string]struct{}{
	pb.BowlerService_DeleteBowler_FullMethodName:       {},
	pb.BowlerService_BatchDeleteBowlers_FullMethodName: {},
	pb.BowlerService_ExportBowlers_FullMethodName:      {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := adminMethods[info.FullMethod]; ok {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		subject, err := s.admin.Authorize(accessToken)
		if err != nil {
			s.logger.Warn(ctx, "rejected token", "method", info.FullMethod, "error", err)
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		ctx = context.WithValue(ctx, subjectKey, subject)

	}

	return handler(ctx, req)
}
