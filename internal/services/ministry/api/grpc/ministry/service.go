// Package ministry exposes ministry.v1 gRPC operations.
package ministry

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	ministryv1 "github.com/louisbranch/shepherd.church/api/gen/go/ministry/v1"
	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
	grpcmetadata "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/metadata"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/domain"
)

// Service exposes ministry.v1 gRPC operations over the domain service.
type Service struct {
	ministryv1.UnimplementedMinistryServiceServer
	domain *domain.Service
}

// NewService creates a ministry gRPC service.
func NewService(domainService *domain.Service) *Service {
	return &Service{domain: domainService}
}

// CreateDemand creates a pending demand for a ministry.
func (s *Service) CreateDemand(ctx context.Context, in *ministryv1.CreateDemandRequest) (*ministryv1.CreateDemandResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create demand request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	caller, err := requireCapability(ctx, permission.CapabilityManageDemands)
	if err != nil {
		return nil, err
	}

	input := demand.CreateDemandInput{
		ChurchID:            caller.ChurchID,
		MinistryID:          in.GetMinistryId(),
		EventID:             in.GetEventId(),
		ResponsibleMemberID: in.GetResponsibleMemberId(),
		Title:               in.GetTitle(),
		Description:         in.GetDescription(),
		Priority:            priorityFromProto(in.GetPriority()),
	}
	if in.GetDueAt() != nil {
		dueAt := in.GetDueAt().AsTime()
		input.DueAt = &dueAt
	}

	created, err := s.domain.CreateDemand(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.CreateDemandResponse{Demand: demandToProto(created)}, nil
}

// AssignDemand sets or replaces the member responsible for a demand.
func (s *Service) AssignDemand(ctx context.Context, in *ministryv1.AssignDemandRequest) (*ministryv1.AssignDemandResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "assign demand request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	if _, err := requireCapability(ctx, permission.CapabilityManageDemands); err != nil {
		return nil, err
	}

	updated, err := s.domain.AssignDemand(ctx, in.GetDemandId(), in.GetMemberId())
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.AssignDemandResponse{Demand: demandToProto(updated)}, nil
}

// UpdateDemandStatus moves a demand between lifecycle statuses.
func (s *Service) UpdateDemandStatus(ctx context.Context, in *ministryv1.UpdateDemandStatusRequest) (*ministryv1.UpdateDemandStatusResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update demand status request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	if _, err := requireCapability(ctx, permission.CapabilityManageDemands); err != nil {
		return nil, err
	}

	updated, err := s.domain.UpdateDemandStatus(ctx, in.GetDemandId(), in.GetStatus())
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.UpdateDemandStatusResponse{Demand: demandToProto(updated)}, nil
}

// ListDemandBoard returns a ministry's demands grouped into board columns.
func (s *Service) ListDemandBoard(ctx context.Context, in *ministryv1.ListDemandBoardRequest) (*ministryv1.ListDemandBoardResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list demand board request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	caller, err := requireCapability(ctx, permission.CapabilityManageDemands)
	if err != nil {
		return nil, err
	}

	board, err := s.domain.ListDemandBoard(ctx, caller.ChurchID, in.GetMinistryId())
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.ListDemandBoardResponse{
		Pending:    demandsToProto(board.Pending),
		InProgress: demandsToProto(board.InProgress),
		Done:       demandsToProto(board.Done),
	}, nil
}

// CreateSchedule creates a draft schedule with an empty roster.
func (s *Service) CreateSchedule(ctx context.Context, in *ministryv1.CreateScheduleRequest) (*ministryv1.CreateScheduleResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create schedule request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	caller, err := requireCapability(ctx, permission.CapabilityManageSchedules)
	if err != nil {
		return nil, err
	}

	input := schedule.CreateScheduleInput{
		ChurchID:   caller.ChurchID,
		MinistryID: in.GetMinistryId(),
		EventID:    in.GetEventId(),
		Notes:      in.GetNotes(),
	}
	if in.GetServiceDate() != nil {
		input.ServiceDate = in.GetServiceDate().AsTime()
	}

	created, err := s.domain.CreateSchedule(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.CreateScheduleResponse{Schedule: scheduleToProto(created)}, nil
}

// AssignVolunteer adds a volunteer to a schedule roster.
func (s *Service) AssignVolunteer(ctx context.Context, in *ministryv1.AssignVolunteerRequest) (*ministryv1.AssignVolunteerResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "assign volunteer request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	if _, err := requireCapability(ctx, permission.CapabilityManageSchedules); err != nil {
		return nil, err
	}

	updated, err := s.domain.AssignVolunteer(ctx, in.GetScheduleId(), in.GetMemberId())
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.AssignVolunteerResponse{Schedule: scheduleToProto(updated)}, nil
}

// RemoveVolunteer removes one assignment from a schedule roster.
func (s *Service) RemoveVolunteer(ctx context.Context, in *ministryv1.RemoveVolunteerRequest) (*ministryv1.RemoveVolunteerResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "remove volunteer request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	if _, err := requireCapability(ctx, permission.CapabilityManageSchedules); err != nil {
		return nil, err
	}

	if err := s.domain.RemoveVolunteer(ctx, in.GetAssignmentId()); err != nil {
		return nil, s.handleError(ctx, err)
	}
	return &ministryv1.RemoveVolunteerResponse{}, nil
}

// ListSchedules returns a ministry's schedules ordered by service date.
func (s *Service) ListSchedules(ctx context.Context, in *ministryv1.ListSchedulesRequest) (*ministryv1.ListSchedulesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list schedules request is required")
	}
	if s == nil || s.domain == nil {
		return nil, status.Error(codes.Internal, "ministry service is not configured")
	}
	caller, err := requireCapability(ctx, permission.CapabilityManageSchedules)
	if err != nil {
		return nil, err
	}

	schedules, err := s.domain.ListSchedules(ctx, caller.ChurchID, in.GetMinistryId())
	if err != nil {
		return nil, s.handleError(ctx, err)
	}
	resp := &ministryv1.ListSchedulesResponse{
		Schedules: make([]*ministryv1.Schedule, 0, len(schedules)),
	}
	for _, sched := range schedules {
		resp.Schedules = append(resp.Schedules, scheduleToProto(sched))
	}
	return resp, nil
}

func (s *Service) handleError(ctx context.Context, err error) error {
	return apperrors.HandleError(err, grpcmetadata.LocaleFromContext(ctx))
}

func demandToProto(d demand.Demand) *ministryv1.Demand {
	out := &ministryv1.Demand{
		Id:                  d.ID,
		ChurchId:            d.ChurchID,
		MinistryId:          d.MinistryID,
		EventId:             d.EventID,
		ResponsibleMemberId: d.ResponsibleMemberID,
		Title:               d.Title,
		Description:         d.Description,
		Status:              d.Status.String(),
		Priority:            priorityToProto(d.Priority),
		CreatedAt:           timestamppb.New(d.CreatedAt),
		UpdatedAt:           timestamppb.New(d.UpdatedAt),
	}
	if d.DueAt != nil {
		out.DueAt = timestamppb.New(*d.DueAt)
	}
	return out
}

func demandsToProto(demands []demand.Demand) []*ministryv1.Demand {
	out := make([]*ministryv1.Demand, 0, len(demands))
	for _, d := range demands {
		out = append(out, demandToProto(d))
	}
	return out
}

func scheduleToProto(sched schedule.Schedule) *ministryv1.Schedule {
	out := &ministryv1.Schedule{
		Id:          sched.ID,
		ChurchId:    sched.ChurchID,
		MinistryId:  sched.MinistryID,
		EventId:     sched.EventID,
		Notes:       sched.Notes,
		Status:      sched.Status.String(),
		ServiceDate: timestamppb.New(sched.ServiceDate),
		CreatedAt:   timestamppb.New(sched.CreatedAt),
		UpdatedAt:   timestamppb.New(sched.UpdatedAt),
		Assignments: make([]*ministryv1.Assignment, 0, len(sched.Assignments)),
	}
	for _, assignment := range sched.Assignments {
		out.Assignments = append(out.Assignments, &ministryv1.Assignment{
			Id:          assignment.ID,
			ScheduleId:  assignment.ScheduleID,
			MemberId:    assignment.MemberID,
			MemberName:  assignment.MemberName,
			MemberEmail: assignment.MemberEmail,
			CreatedAt:   timestamppb.New(assignment.CreatedAt),
		})
	}
	return out
}

func priorityFromProto(p ministryv1.DemandPriority) demand.Priority {
	switch p {
	case ministryv1.DemandPriority_DEMAND_PRIORITY_LOW:
		return demand.PriorityLow
	case ministryv1.DemandPriority_DEMAND_PRIORITY_MEDIUM:
		return demand.PriorityMedium
	case ministryv1.DemandPriority_DEMAND_PRIORITY_HIGH:
		return demand.PriorityHigh
	default:
		return demand.PriorityNone
	}
}

func priorityToProto(p demand.Priority) ministryv1.DemandPriority {
	switch p {
	case demand.PriorityLow:
		return ministryv1.DemandPriority_DEMAND_PRIORITY_LOW
	case demand.PriorityMedium:
		return ministryv1.DemandPriority_DEMAND_PRIORITY_MEDIUM
	case demand.PriorityHigh:
		return ministryv1.DemandPriority_DEMAND_PRIORITY_HIGH
	default:
		return ministryv1.DemandPriority_DEMAND_PRIORITY_UNSPECIFIED
	}
}
