// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: ministry/v1/ministry.proto

package ministryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MinistryService_CreateDemand_FullMethodName       = "/ministry.v1.MinistryService/CreateDemand"
	MinistryService_AssignDemand_FullMethodName       = "/ministry.v1.MinistryService/AssignDemand"
	MinistryService_UpdateDemandStatus_FullMethodName = "/ministry.v1.MinistryService/UpdateDemandStatus"
	MinistryService_ListDemandBoard_FullMethodName    = "/ministry.v1.MinistryService/ListDemandBoard"
	MinistryService_CreateSchedule_FullMethodName     = "/ministry.v1.MinistryService/CreateSchedule"
	MinistryService_AssignVolunteer_FullMethodName    = "/ministry.v1.MinistryService/AssignVolunteer"
	MinistryService_RemoveVolunteer_FullMethodName    = "/ministry.v1.MinistryService/RemoveVolunteer"
	MinistryService_ListSchedules_FullMethodName      = "/ministry.v1.MinistryService/ListSchedules"
)

// MinistryServiceClient is the client API for MinistryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MinistryService manages ministry demands and volunteer schedules.
type MinistryServiceClient interface {
	// CreateDemand creates a pending demand for a ministry.
	CreateDemand(ctx context.Context, in *CreateDemandRequest, opts ...grpc.CallOption) (*CreateDemandResponse, error)
	// AssignDemand sets or replaces the member responsible for a demand.
	AssignDemand(ctx context.Context, in *AssignDemandRequest, opts ...grpc.CallOption) (*AssignDemandResponse, error)
	// UpdateDemandStatus moves a demand between lifecycle statuses.
	UpdateDemandStatus(ctx context.Context, in *UpdateDemandStatusRequest, opts ...grpc.CallOption) (*UpdateDemandStatusResponse, error)
	// ListDemandBoard returns a ministry's demands grouped into board columns.
	ListDemandBoard(ctx context.Context, in *ListDemandBoardRequest, opts ...grpc.CallOption) (*ListDemandBoardResponse, error)
	// CreateSchedule creates a draft schedule with an empty roster.
	CreateSchedule(ctx context.Context, in *CreateScheduleRequest, opts ...grpc.CallOption) (*CreateScheduleResponse, error)
	// AssignVolunteer adds a volunteer to a schedule roster.
	AssignVolunteer(ctx context.Context, in *AssignVolunteerRequest, opts ...grpc.CallOption) (*AssignVolunteerResponse, error)
	// RemoveVolunteer removes one assignment from a schedule roster.
	RemoveVolunteer(ctx context.Context, in *RemoveVolunteerRequest, opts ...grpc.CallOption) (*RemoveVolunteerResponse, error)
	// ListSchedules returns a ministry's schedules ordered by service date.
	ListSchedules(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error)
}

type ministryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMinistryServiceClient(cc grpc.ClientConnInterface) MinistryServiceClient {
	return &ministryServiceClient{cc}
}

func (c *ministryServiceClient) CreateDemand(ctx context.Context, in *CreateDemandRequest, opts ...grpc.CallOption) (*CreateDemandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateDemandResponse)
	err := c.cc.Invoke(ctx, MinistryService_CreateDemand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) AssignDemand(ctx context.Context, in *AssignDemandRequest, opts ...grpc.CallOption) (*AssignDemandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignDemandResponse)
	err := c.cc.Invoke(ctx, MinistryService_AssignDemand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) UpdateDemandStatus(ctx context.Context, in *UpdateDemandStatusRequest, opts ...grpc.CallOption) (*UpdateDemandStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateDemandStatusResponse)
	err := c.cc.Invoke(ctx, MinistryService_UpdateDemandStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) ListDemandBoard(ctx context.Context, in *ListDemandBoardRequest, opts ...grpc.CallOption) (*ListDemandBoardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDemandBoardResponse)
	err := c.cc.Invoke(ctx, MinistryService_ListDemandBoard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) CreateSchedule(ctx context.Context, in *CreateScheduleRequest, opts ...grpc.CallOption) (*CreateScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateScheduleResponse)
	err := c.cc.Invoke(ctx, MinistryService_CreateSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) AssignVolunteer(ctx context.Context, in *AssignVolunteerRequest, opts ...grpc.CallOption) (*AssignVolunteerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignVolunteerResponse)
	err := c.cc.Invoke(ctx, MinistryService_AssignVolunteer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) RemoveVolunteer(ctx context.Context, in *RemoveVolunteerRequest, opts ...grpc.CallOption) (*RemoveVolunteerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveVolunteerResponse)
	err := c.cc.Invoke(ctx, MinistryService_RemoveVolunteer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ministryServiceClient) ListSchedules(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSchedulesResponse)
	err := c.cc.Invoke(ctx, MinistryService_ListSchedules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MinistryServiceServer is the server API for MinistryService service.
// All implementations must embed UnimplementedMinistryServiceServer
// for forward compatibility.
//
// MinistryService manages ministry demands and volunteer schedules.
type MinistryServiceServer interface {
	// CreateDemand creates a pending demand for a ministry.
	CreateDemand(context.Context, *CreateDemandRequest) (*CreateDemandResponse, error)
	// AssignDemand sets or replaces the member responsible for a demand.
	AssignDemand(context.Context, *AssignDemandRequest) (*AssignDemandResponse, error)
	// UpdateDemandStatus moves a demand between lifecycle statuses.
	UpdateDemandStatus(context.Context, *UpdateDemandStatusRequest) (*UpdateDemandStatusResponse, error)
	// ListDemandBoard returns a ministry's demands grouped into board columns.
	ListDemandBoard(context.Context, *ListDemandBoardRequest) (*ListDemandBoardResponse, error)
	// CreateSchedule creates a draft schedule with an empty roster.
	CreateSchedule(context.Context, *CreateScheduleRequest) (*CreateScheduleResponse, error)
	// AssignVolunteer adds a volunteer to a schedule roster.
	AssignVolunteer(context.Context, *AssignVolunteerRequest) (*AssignVolunteerResponse, error)
	// RemoveVolunteer removes one assignment from a schedule roster.
	RemoveVolunteer(context.Context, *RemoveVolunteerRequest) (*RemoveVolunteerResponse, error)
	// ListSchedules returns a ministry's schedules ordered by service date.
	ListSchedules(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error)
	mustEmbedUnimplementedMinistryServiceServer()
}

// UnimplementedMinistryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMinistryServiceServer struct{}

func (UnimplementedMinistryServiceServer) CreateDemand(context.Context, *CreateDemandRequest) (*CreateDemandResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDemand not implemented")
}
func (UnimplementedMinistryServiceServer) AssignDemand(context.Context, *AssignDemandRequest) (*AssignDemandResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignDemand not implemented")
}
func (UnimplementedMinistryServiceServer) UpdateDemandStatus(context.Context, *UpdateDemandStatusRequest) (*UpdateDemandStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDemandStatus not implemented")
}
func (UnimplementedMinistryServiceServer) ListDemandBoard(context.Context, *ListDemandBoardRequest) (*ListDemandBoardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDemandBoard not implemented")
}
func (UnimplementedMinistryServiceServer) CreateSchedule(context.Context, *CreateScheduleRequest) (*CreateScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSchedule not implemented")
}
func (UnimplementedMinistryServiceServer) AssignVolunteer(context.Context, *AssignVolunteerRequest) (*AssignVolunteerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignVolunteer not implemented")
}
func (UnimplementedMinistryServiceServer) RemoveVolunteer(context.Context, *RemoveVolunteerRequest) (*RemoveVolunteerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveVolunteer not implemented")
}
func (UnimplementedMinistryServiceServer) ListSchedules(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSchedules not implemented")
}
func (UnimplementedMinistryServiceServer) mustEmbedUnimplementedMinistryServiceServer() {}
func (UnimplementedMinistryServiceServer) testEmbeddedByValue()                         {}

// UnsafeMinistryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MinistryServiceServer will
// result in compilation errors.
type UnsafeMinistryServiceServer interface {
	mustEmbedUnimplementedMinistryServiceServer()
}

func RegisterMinistryServiceServer(s grpc.ServiceRegistrar, srv MinistryServiceServer) {
	// If the following call panics, it indicates UnimplementedMinistryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MinistryService_ServiceDesc, srv)
}

func _MinistryService_CreateDemand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDemandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).CreateDemand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_CreateDemand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).CreateDemand(ctx, req.(*CreateDemandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_AssignDemand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignDemandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).AssignDemand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_AssignDemand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).AssignDemand(ctx, req.(*AssignDemandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_UpdateDemandStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDemandStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).UpdateDemandStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_UpdateDemandStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).UpdateDemandStatus(ctx, req.(*UpdateDemandStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_ListDemandBoard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDemandBoardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).ListDemandBoard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_ListDemandBoard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).ListDemandBoard(ctx, req.(*ListDemandBoardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_CreateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).CreateSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_CreateSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).CreateSchedule(ctx, req.(*CreateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_AssignVolunteer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignVolunteerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).AssignVolunteer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_AssignVolunteer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).AssignVolunteer(ctx, req.(*AssignVolunteerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_RemoveVolunteer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveVolunteerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).RemoveVolunteer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_RemoveVolunteer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).RemoveVolunteer(ctx, req.(*RemoveVolunteerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MinistryService_ListSchedules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSchedulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MinistryServiceServer).ListSchedules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinistryService_ListSchedules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MinistryServiceServer).ListSchedules(ctx, req.(*ListSchedulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MinistryService_ServiceDesc is the grpc.ServiceDesc for MinistryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MinistryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ministry.v1.MinistryService",
	HandlerType: (*MinistryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDemand",
			Handler:    _MinistryService_CreateDemand_Handler,
		},
		{
			MethodName: "AssignDemand",
			Handler:    _MinistryService_AssignDemand_Handler,
		},
		{
			MethodName: "UpdateDemandStatus",
			Handler:    _MinistryService_UpdateDemandStatus_Handler,
		},
		{
			MethodName: "ListDemandBoard",
			Handler:    _MinistryService_ListDemandBoard_Handler,
		},
		{
			MethodName: "CreateSchedule",
			Handler:    _MinistryService_CreateSchedule_Handler,
		},
		{
			MethodName: "AssignVolunteer",
			Handler:    _MinistryService_AssignVolunteer_Handler,
		},
		{
			MethodName: "RemoveVolunteer",
			Handler:    _MinistryService_RemoveVolunteer_Handler,
		},
		{
			MethodName: "ListSchedules",
			Handler:    _MinistryService_ListSchedules_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ministry/v1/ministry.proto",
}
