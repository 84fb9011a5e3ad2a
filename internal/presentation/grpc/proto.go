package grpc

// proto.go defines the gRPC server interface derived from
// leaselab/screening/v1/screening.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/leaselab/screening-api/gen/go/leaselab/screening/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/service"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// CalculateScoreRequest triggers a scoring run.
type CalculateScoreRequest struct {
	TenantID         string `json:"tenant_id"`
	PropertyID       string `json:"property_id,omitempty"`
	ApplicationID    string `json:"application_id,omitempty"`
	MonthlyRentCents int64  `json:"monthly_rent_cents,omitempty"`
	ScoringMethod    string `json:"scoring_method,omitempty"`
}

// GetScoreRequest fetches a tenant's latest active score.
type GetScoreRequest struct {
	TenantID string `json:"tenant_id"`
}

// GetScoreAnalysisRequest fetches the analysis of a tenant's latest score.
type GetScoreAnalysisRequest struct {
	TenantID string `json:"tenant_id"`
}

// ScoreResponse wraps one score record.
type ScoreResponse struct {
	Score dto.TenantScoreResponse `json:"score"`
}

// ScoreAnalysisResponse carries the analysis plus improvement suggestions.
type ScoreAnalysisResponse struct {
	Analysis        service.ScoreAnalysis    `json:"analysis"`
	Recommendations []service.Recommendation `json:"recommendations"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// ScreeningServiceServer is the server API for ScreeningService.
// It mirrors the proto-generated interface from leaselab.screening.v1.ScreeningService.
type ScreeningServiceServer interface {
	CalculateScore(context.Context, *CalculateScoreRequest) (*ScoreResponse, error)
	GetScore(context.Context, *GetScoreRequest) (*ScoreResponse, error)
	GetScoreAnalysis(context.Context, *GetScoreAnalysisRequest) (*ScoreAnalysisResponse, error)
	mustEmbedUnimplementedScreeningServiceServer()
}

// UnimplementedScreeningServiceServer provides forward-compatible default implementations.
type UnimplementedScreeningServiceServer struct{}

func (UnimplementedScreeningServiceServer) CalculateScore(context.Context, *CalculateScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateScore not implemented")
}
func (UnimplementedScreeningServiceServer) GetScore(context.Context, *GetScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScore not implemented")
}
func (UnimplementedScreeningServiceServer) GetScoreAnalysis(context.Context, *GetScoreAnalysisRequest) (*ScoreAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScoreAnalysis not implemented")
}
func (UnimplementedScreeningServiceServer) mustEmbedUnimplementedScreeningServiceServer() {}

// RegisterScreeningServiceServer registers the ScreeningServiceServer with the gRPC server.
func RegisterScreeningServiceServer(s *grpclib.Server, srv ScreeningServiceServer) {
	s.RegisterService(&_ScreeningService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ScreeningService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "leaselab.screening.v1.ScreeningService",
	HandlerType: (*ScreeningServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CalculateScore", Handler: _ScreeningService_CalculateScore_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetScore", Handler: _ScreeningService_GetScore_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetScoreAnalysis", Handler: _ScreeningService_GetScoreAnalysis_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ScreeningService_CalculateScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).CalculateScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/leaselab.screening.v1.ScreeningService/CalculateScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).CalculateScore(ctx, req.(*CalculateScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ScreeningService_GetScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).GetScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/leaselab.screening.v1.ScreeningService/GetScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).GetScore(ctx, req.(*GetScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ScreeningService_GetScoreAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScoreAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).GetScoreAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/leaselab.screening.v1.ScreeningService/GetScoreAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).GetScoreAnalysis(ctx, req.(*GetScoreAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}
