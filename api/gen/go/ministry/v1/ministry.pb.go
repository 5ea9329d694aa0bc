// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: ministry/v1/ministry.proto

package ministryv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// DemandPriority orders demands within a board column.
type DemandPriority int32

const (
	DemandPriority_DEMAND_PRIORITY_UNSPECIFIED DemandPriority = 0
	DemandPriority_DEMAND_PRIORITY_LOW         DemandPriority = 1
	DemandPriority_DEMAND_PRIORITY_MEDIUM      DemandPriority = 2
	DemandPriority_DEMAND_PRIORITY_HIGH        DemandPriority = 3
)

// Enum value maps for DemandPriority.
var (
	DemandPriority_name = map[int32]string{
		0: "DEMAND_PRIORITY_UNSPECIFIED",
		1: "DEMAND_PRIORITY_LOW",
		2: "DEMAND_PRIORITY_MEDIUM",
		3: "DEMAND_PRIORITY_HIGH",
	}
	DemandPriority_value = map[string]int32{
		"DEMAND_PRIORITY_UNSPECIFIED": 0,
		"DEMAND_PRIORITY_LOW":         1,
		"DEMAND_PRIORITY_MEDIUM":      2,
		"DEMAND_PRIORITY_HIGH":        3,
	}
)

func (x DemandPriority) Enum() *DemandPriority {
	p := new(DemandPriority)
	*p = x
	return p
}

func (x DemandPriority) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (DemandPriority) Descriptor() protoreflect.EnumDescriptor {
	return file_ministry_v1_ministry_proto_enumTypes[0].Descriptor()
}

func (DemandPriority) Type() protoreflect.EnumType {
	return &file_ministry_v1_ministry_proto_enumTypes[0]
}

func (x DemandPriority) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use DemandPriority.Descriptor instead.
func (DemandPriority) EnumDescriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{0}
}

// Demand is one unit of ministry work.
type Demand struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ChurchId            string                 `protobuf:"bytes,2,opt,name=church_id,json=churchId,proto3" json:"church_id,omitempty"`
	MinistryId          string                 `protobuf:"bytes,3,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	EventId             string                 `protobuf:"bytes,4,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	ResponsibleMemberId string                 `protobuf:"bytes,5,opt,name=responsible_member_id,json=responsibleMemberId,proto3" json:"responsible_member_id,omitempty"`
	Title               string                 `protobuf:"bytes,6,opt,name=title,proto3" json:"title,omitempty"`
	Description         string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	// Lifecycle status label: pending, in_progress or done.
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Priority      DemandPriority         `protobuf:"varint,9,opt,name=priority,proto3,enum=ministry.v1.DemandPriority" json:"priority,omitempty"`
	DueAt         *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=due_at,json=dueAt,proto3" json:"due_at,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Demand) Reset() {
	*x = Demand{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Demand) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Demand) ProtoMessage() {}

func (x *Demand) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Demand.ProtoReflect.Descriptor instead.
func (*Demand) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{0}
}

func (x *Demand) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Demand) GetChurchId() string {
	if x != nil {
		return x.ChurchId
	}
	return ""
}

func (x *Demand) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

func (x *Demand) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *Demand) GetResponsibleMemberId() string {
	if x != nil {
		return x.ResponsibleMemberId
	}
	return ""
}

func (x *Demand) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Demand) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Demand) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Demand) GetPriority() DemandPriority {
	if x != nil {
		return x.Priority
	}
	return DemandPriority_DEMAND_PRIORITY_UNSPECIFIED
}

func (x *Demand) GetDueAt() *timestamppb.Timestamp {
	if x != nil {
		return x.DueAt
	}
	return nil
}

func (x *Demand) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Demand) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// Schedule is the volunteer roster for one service occurrence.
type Schedule struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ChurchId   string                 `protobuf:"bytes,2,opt,name=church_id,json=churchId,proto3" json:"church_id,omitempty"`
	MinistryId string                 `protobuf:"bytes,3,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	EventId    string                 `protobuf:"bytes,4,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Notes      string                 `protobuf:"bytes,5,opt,name=notes,proto3" json:"notes,omitempty"`
	// Lifecycle status label: draft or published.
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ServiceDate   *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=service_date,json=serviceDate,proto3" json:"service_date,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Assignments   []*Assignment          `protobuf:"bytes,10,rep,name=assignments,proto3" json:"assignments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Schedule) Reset() {
	*x = Schedule{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Schedule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Schedule) ProtoMessage() {}

func (x *Schedule) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Schedule.ProtoReflect.Descriptor instead.
func (*Schedule) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{1}
}

func (x *Schedule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Schedule) GetChurchId() string {
	if x != nil {
		return x.ChurchId
	}
	return ""
}

func (x *Schedule) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

func (x *Schedule) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *Schedule) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Schedule) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Schedule) GetServiceDate() *timestamppb.Timestamp {
	if x != nil {
		return x.ServiceDate
	}
	return nil
}

func (x *Schedule) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Schedule) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Schedule) GetAssignments() []*Assignment {
	if x != nil {
		return x.Assignments
	}
	return nil
}

// Assignment links one volunteer to one schedule.
type Assignment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ScheduleId    string                 `protobuf:"bytes,2,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	MemberName    string                 `protobuf:"bytes,4,opt,name=member_name,json=memberName,proto3" json:"member_name,omitempty"`
	MemberEmail   string                 `protobuf:"bytes,5,opt,name=member_email,json=memberEmail,proto3" json:"member_email,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Assignment) Reset() {
	*x = Assignment{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Assignment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Assignment) ProtoMessage() {}

func (x *Assignment) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Assignment.ProtoReflect.Descriptor instead.
func (*Assignment) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{2}
}

func (x *Assignment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Assignment) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *Assignment) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *Assignment) GetMemberName() string {
	if x != nil {
		return x.MemberName
	}
	return ""
}

func (x *Assignment) GetMemberEmail() string {
	if x != nil {
		return x.MemberEmail
	}
	return ""
}

func (x *Assignment) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type CreateDemandRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	MinistryId          string                 `protobuf:"bytes,1,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	EventId             string                 `protobuf:"bytes,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	ResponsibleMemberId string                 `protobuf:"bytes,3,opt,name=responsible_member_id,json=responsibleMemberId,proto3" json:"responsible_member_id,omitempty"`
	Title               string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Description         string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Priority            DemandPriority         `protobuf:"varint,6,opt,name=priority,proto3,enum=ministry.v1.DemandPriority" json:"priority,omitempty"`
	DueAt               *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=due_at,json=dueAt,proto3" json:"due_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *CreateDemandRequest) Reset() {
	*x = CreateDemandRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDemandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDemandRequest) ProtoMessage() {}

func (x *CreateDemandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDemandRequest.ProtoReflect.Descriptor instead.
func (*CreateDemandRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{3}
}

func (x *CreateDemandRequest) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

func (x *CreateDemandRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *CreateDemandRequest) GetResponsibleMemberId() string {
	if x != nil {
		return x.ResponsibleMemberId
	}
	return ""
}

func (x *CreateDemandRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateDemandRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateDemandRequest) GetPriority() DemandPriority {
	if x != nil {
		return x.Priority
	}
	return DemandPriority_DEMAND_PRIORITY_UNSPECIFIED
}

func (x *CreateDemandRequest) GetDueAt() *timestamppb.Timestamp {
	if x != nil {
		return x.DueAt
	}
	return nil
}

type CreateDemandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Demand        *Demand                `protobuf:"bytes,1,opt,name=demand,proto3" json:"demand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDemandResponse) Reset() {
	*x = CreateDemandResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDemandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDemandResponse) ProtoMessage() {}

func (x *CreateDemandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDemandResponse.ProtoReflect.Descriptor instead.
func (*CreateDemandResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{4}
}

func (x *CreateDemandResponse) GetDemand() *Demand {
	if x != nil {
		return x.Demand
	}
	return nil
}

type AssignDemandRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DemandId      string                 `protobuf:"bytes,1,opt,name=demand_id,json=demandId,proto3" json:"demand_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,2,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignDemandRequest) Reset() {
	*x = AssignDemandRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignDemandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignDemandRequest) ProtoMessage() {}

func (x *AssignDemandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignDemandRequest.ProtoReflect.Descriptor instead.
func (*AssignDemandRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{5}
}

func (x *AssignDemandRequest) GetDemandId() string {
	if x != nil {
		return x.DemandId
	}
	return ""
}

func (x *AssignDemandRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type AssignDemandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Demand        *Demand                `protobuf:"bytes,1,opt,name=demand,proto3" json:"demand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignDemandResponse) Reset() {
	*x = AssignDemandResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignDemandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignDemandResponse) ProtoMessage() {}

func (x *AssignDemandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignDemandResponse.ProtoReflect.Descriptor instead.
func (*AssignDemandResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{6}
}

func (x *AssignDemandResponse) GetDemand() *Demand {
	if x != nil {
		return x.Demand
	}
	return nil
}

type UpdateDemandStatusRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	DemandId string                 `protobuf:"bytes,1,opt,name=demand_id,json=demandId,proto3" json:"demand_id,omitempty"`
	// Target status label: pending, in_progress or done.
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDemandStatusRequest) Reset() {
	*x = UpdateDemandStatusRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDemandStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDemandStatusRequest) ProtoMessage() {}

func (x *UpdateDemandStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDemandStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateDemandStatusRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateDemandStatusRequest) GetDemandId() string {
	if x != nil {
		return x.DemandId
	}
	return ""
}

func (x *UpdateDemandStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateDemandStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Demand        *Demand                `protobuf:"bytes,1,opt,name=demand,proto3" json:"demand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDemandStatusResponse) Reset() {
	*x = UpdateDemandStatusResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDemandStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDemandStatusResponse) ProtoMessage() {}

func (x *UpdateDemandStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDemandStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateDemandStatusResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateDemandStatusResponse) GetDemand() *Demand {
	if x != nil {
		return x.Demand
	}
	return nil
}

type ListDemandBoardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MinistryId    string                 `protobuf:"bytes,1,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDemandBoardRequest) Reset() {
	*x = ListDemandBoardRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDemandBoardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDemandBoardRequest) ProtoMessage() {}

func (x *ListDemandBoardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDemandBoardRequest.ProtoReflect.Descriptor instead.
func (*ListDemandBoardRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{9}
}

func (x *ListDemandBoardRequest) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

type ListDemandBoardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pending       []*Demand              `protobuf:"bytes,1,rep,name=pending,proto3" json:"pending,omitempty"`
	InProgress    []*Demand              `protobuf:"bytes,2,rep,name=in_progress,json=inProgress,proto3" json:"in_progress,omitempty"`
	Done          []*Demand              `protobuf:"bytes,3,rep,name=done,proto3" json:"done,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDemandBoardResponse) Reset() {
	*x = ListDemandBoardResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDemandBoardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDemandBoardResponse) ProtoMessage() {}

func (x *ListDemandBoardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDemandBoardResponse.ProtoReflect.Descriptor instead.
func (*ListDemandBoardResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{10}
}

func (x *ListDemandBoardResponse) GetPending() []*Demand {
	if x != nil {
		return x.Pending
	}
	return nil
}

func (x *ListDemandBoardResponse) GetInProgress() []*Demand {
	if x != nil {
		return x.InProgress
	}
	return nil
}

func (x *ListDemandBoardResponse) GetDone() []*Demand {
	if x != nil {
		return x.Done
	}
	return nil
}

type CreateScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MinistryId    string                 `protobuf:"bytes,1,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	EventId       string                 `protobuf:"bytes,2,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	ServiceDate   *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=service_date,json=serviceDate,proto3" json:"service_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateScheduleRequest) Reset() {
	*x = CreateScheduleRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateScheduleRequest) ProtoMessage() {}

func (x *CreateScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateScheduleRequest.ProtoReflect.Descriptor instead.
func (*CreateScheduleRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{11}
}

func (x *CreateScheduleRequest) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

func (x *CreateScheduleRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *CreateScheduleRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *CreateScheduleRequest) GetServiceDate() *timestamppb.Timestamp {
	if x != nil {
		return x.ServiceDate
	}
	return nil
}

type CreateScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedule      *Schedule              `protobuf:"bytes,1,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateScheduleResponse) Reset() {
	*x = CreateScheduleResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateScheduleResponse) ProtoMessage() {}

func (x *CreateScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateScheduleResponse.ProtoReflect.Descriptor instead.
func (*CreateScheduleResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{12}
}

func (x *CreateScheduleResponse) GetSchedule() *Schedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type AssignVolunteerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,2,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignVolunteerRequest) Reset() {
	*x = AssignVolunteerRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignVolunteerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignVolunteerRequest) ProtoMessage() {}

func (x *AssignVolunteerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignVolunteerRequest.ProtoReflect.Descriptor instead.
func (*AssignVolunteerRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{13}
}

func (x *AssignVolunteerRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *AssignVolunteerRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type AssignVolunteerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedule      *Schedule              `protobuf:"bytes,1,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignVolunteerResponse) Reset() {
	*x = AssignVolunteerResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignVolunteerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignVolunteerResponse) ProtoMessage() {}

func (x *AssignVolunteerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignVolunteerResponse.ProtoReflect.Descriptor instead.
func (*AssignVolunteerResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{14}
}

func (x *AssignVolunteerResponse) GetSchedule() *Schedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type RemoveVolunteerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssignmentId  string                 `protobuf:"bytes,1,opt,name=assignment_id,json=assignmentId,proto3" json:"assignment_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveVolunteerRequest) Reset() {
	*x = RemoveVolunteerRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveVolunteerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveVolunteerRequest) ProtoMessage() {}

func (x *RemoveVolunteerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveVolunteerRequest.ProtoReflect.Descriptor instead.
func (*RemoveVolunteerRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{15}
}

func (x *RemoveVolunteerRequest) GetAssignmentId() string {
	if x != nil {
		return x.AssignmentId
	}
	return ""
}

type RemoveVolunteerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveVolunteerResponse) Reset() {
	*x = RemoveVolunteerResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveVolunteerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveVolunteerResponse) ProtoMessage() {}

func (x *RemoveVolunteerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveVolunteerResponse.ProtoReflect.Descriptor instead.
func (*RemoveVolunteerResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{16}
}

type ListSchedulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MinistryId    string                 `protobuf:"bytes,1,opt,name=ministry_id,json=ministryId,proto3" json:"ministry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchedulesRequest) Reset() {
	*x = ListSchedulesRequest{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchedulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchedulesRequest) ProtoMessage() {}

func (x *ListSchedulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchedulesRequest.ProtoReflect.Descriptor instead.
func (*ListSchedulesRequest) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{17}
}

func (x *ListSchedulesRequest) GetMinistryId() string {
	if x != nil {
		return x.MinistryId
	}
	return ""
}

type ListSchedulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedules     []*Schedule            `protobuf:"bytes,1,rep,name=schedules,proto3" json:"schedules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchedulesResponse) Reset() {
	*x = ListSchedulesResponse{}
	mi := &file_ministry_v1_ministry_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchedulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchedulesResponse) ProtoMessage() {}

func (x *ListSchedulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ministry_v1_ministry_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchedulesResponse.ProtoReflect.Descriptor instead.
func (*ListSchedulesResponse) Descriptor() ([]byte, []int) {
	return file_ministry_v1_ministry_proto_rawDescGZIP(), []int{18}
}

func (x *ListSchedulesResponse) GetSchedules() []*Schedule {
	if x != nil {
		return x.Schedules
	}
	return nil
}

var File_ministry_v1_ministry_proto protoreflect.FileDescriptor

const file_ministry_v1_ministry_proto_rawDesc = "" +
	"\n" +
	"\x1aministry/v1/ministry.proto\x12\vministry.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd7\x03\n" +
	"\x06Demand\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tchurch_id\x18\x02 \x01(\tR\bchurchId\x12\x1f\n" +
	"\vministry_id\x18\x03 \x01(\tR\n" +
	"ministryId\x12\x19\n" +
	"\bevent_id\x18\x04 \x01(\tR\aeventId\x122\n" +
	"\x15responsible_member_id\x18\x05 \x01(\tR\x13responsibleMemberId\x12\x14\n" +
	"\x05title\x18\x06 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x127\n" +
	"\bpriority\x18\t \x01(\x0e2\x1b.ministry.v1.DemandPriorityR\bpriority\x121\n" +
	"\x06due_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\x05dueAt\x129\n" +
	"\n" +
	"created_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x91\x03\n" +
	"\bSchedule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tchurch_id\x18\x02 \x01(\tR\bchurchId\x12\x1f\n" +
	"\vministry_id\x18\x03 \x01(\tR\n" +
	"ministryId\x12\x19\n" +
	"\bevent_id\x18\x04 \x01(\tR\aeventId\x12\x14\n" +
	"\x05notes\x18\x05 \x01(\tR\x05notes\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12=\n" +
	"\fservice_date\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vserviceDate\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x129\n" +
	"\vassignments\x18\n" +
	" \x03(\v2\x17.ministry.v1.AssignmentR\vassignments\"\xd9\x01\n" +
	"\n" +
	"Assignment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vschedule_id\x18\x02 \x01(\tR\n" +
	"scheduleId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x12\x1f\n" +
	"\vmember_name\x18\x04 \x01(\tR\n" +
	"memberName\x12!\n" +
	"\fmember_email\x18\x05 \x01(\tR\vmemberEmail\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\xa9\x02\n" +
	"\x13CreateDemandRequest\x12\x1f\n" +
	"\vministry_id\x18\x01 \x01(\tR\n" +
	"ministryId\x12\x19\n" +
	"\bevent_id\x18\x02 \x01(\tR\aeventId\x122\n" +
	"\x15responsible_member_id\x18\x03 \x01(\tR\x13responsibleMemberId\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x127\n" +
	"\bpriority\x18\x06 \x01(\x0e2\x1b.ministry.v1.DemandPriorityR\bpriority\x121\n" +
	"\x06due_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\x05dueAt\"C\n" +
	"\x14CreateDemandResponse\x12+\n" +
	"\x06demand\x18\x01 \x01(\v2\x13.ministry.v1.DemandR\x06demand\"O\n" +
	"\x13AssignDemandRequest\x12\x1b\n" +
	"\tdemand_id\x18\x01 \x01(\tR\bdemandId\x12\x1b\n" +
	"\tmember_id\x18\x02 \x01(\tR\bmemberId\"C\n" +
	"\x14AssignDemandResponse\x12+\n" +
	"\x06demand\x18\x01 \x01(\v2\x13.ministry.v1.DemandR\x06demand\"P\n" +
	"\x19UpdateDemandStatusRequest\x12\x1b\n" +
	"\tdemand_id\x18\x01 \x01(\tR\bdemandId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"I\n" +
	"\x1aUpdateDemandStatusResponse\x12+\n" +
	"\x06demand\x18\x01 \x01(\v2\x13.ministry.v1.DemandR\x06demand\"9\n" +
	"\x16ListDemandBoardRequest\x12\x1f\n" +
	"\vministry_id\x18\x01 \x01(\tR\n" +
	"ministryId\"\xa7\x01\n" +
	"\x17ListDemandBoardResponse\x12-\n" +
	"\apending\x18\x01 \x03(\v2\x13.ministry.v1.DemandR\apending\x124\n" +
	"\vin_progress\x18\x02 \x03(\v2\x13.ministry.v1.DemandR\n" +
	"inProgress\x12'\n" +
	"\x04done\x18\x03 \x03(\v2\x13.ministry.v1.DemandR\x04done\"\xa8\x01\n" +
	"\x15CreateScheduleRequest\x12\x1f\n" +
	"\vministry_id\x18\x01 \x01(\tR\n" +
	"ministryId\x12\x19\n" +
	"\bevent_id\x18\x02 \x01(\tR\aeventId\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\x12=\n" +
	"\fservice_date\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\vserviceDate\"K\n" +
	"\x16CreateScheduleResponse\x121\n" +
	"\bschedule\x18\x01 \x01(\v2\x15.ministry.v1.ScheduleR\bschedule\"V\n" +
	"\x16AssignVolunteerRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\x12\x1b\n" +
	"\tmember_id\x18\x02 \x01(\tR\bmemberId\"L\n" +
	"\x17AssignVolunteerResponse\x121\n" +
	"\bschedule\x18\x01 \x01(\v2\x15.ministry.v1.ScheduleR\bschedule\"=\n" +
	"\x16RemoveVolunteerRequest\x12#\n" +
	"\rassignment_id\x18\x01 \x01(\tR\fassignmentId\"\x19\n" +
	"\x17RemoveVolunteerResponse\"7\n" +
	"\x14ListSchedulesRequest\x12\x1f\n" +
	"\vministry_id\x18\x01 \x01(\tR\n" +
	"ministryId\"L\n" +
	"\x15ListSchedulesResponse\x123\n" +
	"\tschedules\x18\x01 \x03(\v2\x15.ministry.v1.ScheduleR\tschedules*\x80\x01\n" +
	"\x0eDemandPriority\x12\x1f\n" +
	"\x1bDEMAND_PRIORITY_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13DEMAND_PRIORITY_LOW\x10\x01\x12\x1a\n" +
	"\x16DEMAND_PRIORITY_MEDIUM\x10\x02\x12\x18\n" +
	"\x14DEMAND_PRIORITY_HIGH\x10\x032\xef\x05\n" +
	"\x0fMinistryService\x12S\n" +
	"\fCreateDemand\x12 .ministry.v1.CreateDemandRequest\x1a!.ministry.v1.CreateDemandResponse\x12S\n" +
	"\fAssignDemand\x12 .ministry.v1.AssignDemandRequest\x1a!.ministry.v1.AssignDemandResponse\x12e\n" +
	"\x12UpdateDemandStatus\x12&.ministry.v1.UpdateDemandStatusRequest\x1a'.ministry.v1.UpdateDemandStatusResponse\x12\\\n" +
	"\x0fListDemandBoard\x12#.ministry.v1.ListDemandBoardRequest\x1a$.ministry.v1.ListDemandBoardResponse\x12Y\n" +
	"\x0eCreateSchedule\x12\".ministry.v1.CreateScheduleRequest\x1a#.ministry.v1.CreateScheduleResponse\x12\\\n" +
	"\x0fAssignVolunteer\x12#.ministry.v1.AssignVolunteerRequest\x1a$.ministry.v1.AssignVolunteerResponse\x12\\\n" +
	"\x0fRemoveVolunteer\x12#.ministry.v1.RemoveVolunteerRequest\x1a$.ministry.v1.RemoveVolunteerResponse\x12V\n" +
	"\rListSchedules\x12!.ministry.v1.ListSchedulesRequest\x1a\".ministry.v1.ListSchedulesResponseBJZHgithub.com/louisbranch/shepherd.church/api/gen/go/ministry/v1;ministryv1b\x06proto3"

var (
	file_ministry_v1_ministry_proto_rawDescOnce sync.Once
	file_ministry_v1_ministry_proto_rawDescData []byte
)

func file_ministry_v1_ministry_proto_rawDescGZIP() []byte {
	file_ministry_v1_ministry_proto_rawDescOnce.Do(func() {
		file_ministry_v1_ministry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ministry_v1_ministry_proto_rawDesc), len(file_ministry_v1_ministry_proto_rawDesc)))
	})
	return file_ministry_v1_ministry_proto_rawDescData
}

var file_ministry_v1_ministry_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_ministry_v1_ministry_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_ministry_v1_ministry_proto_goTypes = []any{
	(DemandPriority)(0),                // 0: ministry.v1.DemandPriority
	(*Demand)(nil),                     // 1: ministry.v1.Demand
	(*Schedule)(nil),                   // 2: ministry.v1.Schedule
	(*Assignment)(nil),                 // 3: ministry.v1.Assignment
	(*CreateDemandRequest)(nil),        // 4: ministry.v1.CreateDemandRequest
	(*CreateDemandResponse)(nil),       // 5: ministry.v1.CreateDemandResponse
	(*AssignDemandRequest)(nil),        // 6: ministry.v1.AssignDemandRequest
	(*AssignDemandResponse)(nil),       // 7: ministry.v1.AssignDemandResponse
	(*UpdateDemandStatusRequest)(nil),  // 8: ministry.v1.UpdateDemandStatusRequest
	(*UpdateDemandStatusResponse)(nil), // 9: ministry.v1.UpdateDemandStatusResponse
	(*ListDemandBoardRequest)(nil),     // 10: ministry.v1.ListDemandBoardRequest
	(*ListDemandBoardResponse)(nil),    // 11: ministry.v1.ListDemandBoardResponse
	(*CreateScheduleRequest)(nil),      // 12: ministry.v1.CreateScheduleRequest
	(*CreateScheduleResponse)(nil),     // 13: ministry.v1.CreateScheduleResponse
	(*AssignVolunteerRequest)(nil),     // 14: ministry.v1.AssignVolunteerRequest
	(*AssignVolunteerResponse)(nil),    // 15: ministry.v1.AssignVolunteerResponse
	(*RemoveVolunteerRequest)(nil),     // 16: ministry.v1.RemoveVolunteerRequest
	(*RemoveVolunteerResponse)(nil),    // 17: ministry.v1.RemoveVolunteerResponse
	(*ListSchedulesRequest)(nil),       // 18: ministry.v1.ListSchedulesRequest
	(*ListSchedulesResponse)(nil),      // 19: ministry.v1.ListSchedulesResponse
	(*timestamppb.Timestamp)(nil),      // 20: google.protobuf.Timestamp
}
var file_ministry_v1_ministry_proto_depIdxs = []int32{
	0,  // 0: ministry.v1.Demand.priority:type_name -> ministry.v1.DemandPriority
	20, // 1: ministry.v1.Demand.due_at:type_name -> google.protobuf.Timestamp
	20, // 2: ministry.v1.Demand.created_at:type_name -> google.protobuf.Timestamp
	20, // 3: ministry.v1.Demand.updated_at:type_name -> google.protobuf.Timestamp
	20, // 4: ministry.v1.Schedule.service_date:type_name -> google.protobuf.Timestamp
	20, // 5: ministry.v1.Schedule.created_at:type_name -> google.protobuf.Timestamp
	20, // 6: ministry.v1.Schedule.updated_at:type_name -> google.protobuf.Timestamp
	3,  // 7: ministry.v1.Schedule.assignments:type_name -> ministry.v1.Assignment
	20, // 8: ministry.v1.Assignment.created_at:type_name -> google.protobuf.Timestamp
	0,  // 9: ministry.v1.CreateDemandRequest.priority:type_name -> ministry.v1.DemandPriority
	20, // 10: ministry.v1.CreateDemandRequest.due_at:type_name -> google.protobuf.Timestamp
	1,  // 11: ministry.v1.CreateDemandResponse.demand:type_name -> ministry.v1.Demand
	1,  // 12: ministry.v1.AssignDemandResponse.demand:type_name -> ministry.v1.Demand
	1,  // 13: ministry.v1.UpdateDemandStatusResponse.demand:type_name -> ministry.v1.Demand
	1,  // 14: ministry.v1.ListDemandBoardResponse.pending:type_name -> ministry.v1.Demand
	1,  // 15: ministry.v1.ListDemandBoardResponse.in_progress:type_name -> ministry.v1.Demand
	1,  // 16: ministry.v1.ListDemandBoardResponse.done:type_name -> ministry.v1.Demand
	20, // 17: ministry.v1.CreateScheduleRequest.service_date:type_name -> google.protobuf.Timestamp
	2,  // 18: ministry.v1.CreateScheduleResponse.schedule:type_name -> ministry.v1.Schedule
	2,  // 19: ministry.v1.AssignVolunteerResponse.schedule:type_name -> ministry.v1.Schedule
	2,  // 20: ministry.v1.ListSchedulesResponse.schedules:type_name -> ministry.v1.Schedule
	4,  // 21: ministry.v1.MinistryService.CreateDemand:input_type -> ministry.v1.CreateDemandRequest
	6,  // 22: ministry.v1.MinistryService.AssignDemand:input_type -> ministry.v1.AssignDemandRequest
	8,  // 23: ministry.v1.MinistryService.UpdateDemandStatus:input_type -> ministry.v1.UpdateDemandStatusRequest
	10, // 24: ministry.v1.MinistryService.ListDemandBoard:input_type -> ministry.v1.ListDemandBoardRequest
	12, // 25: ministry.v1.MinistryService.CreateSchedule:input_type -> ministry.v1.CreateScheduleRequest
	14, // 26: ministry.v1.MinistryService.AssignVolunteer:input_type -> ministry.v1.AssignVolunteerRequest
	16, // 27: ministry.v1.MinistryService.RemoveVolunteer:input_type -> ministry.v1.RemoveVolunteerRequest
	18, // 28: ministry.v1.MinistryService.ListSchedules:input_type -> ministry.v1.ListSchedulesRequest
	5,  // 29: ministry.v1.MinistryService.CreateDemand:output_type -> ministry.v1.CreateDemandResponse
	7,  // 30: ministry.v1.MinistryService.AssignDemand:output_type -> ministry.v1.AssignDemandResponse
	9,  // 31: ministry.v1.MinistryService.UpdateDemandStatus:output_type -> ministry.v1.UpdateDemandStatusResponse
	11, // 32: ministry.v1.MinistryService.ListDemandBoard:output_type -> ministry.v1.ListDemandBoardResponse
	13, // 33: ministry.v1.MinistryService.CreateSchedule:output_type -> ministry.v1.CreateScheduleResponse
	15, // 34: ministry.v1.MinistryService.AssignVolunteer:output_type -> ministry.v1.AssignVolunteerResponse
	17, // 35: ministry.v1.MinistryService.RemoveVolunteer:output_type -> ministry.v1.RemoveVolunteerResponse
	19, // 36: ministry.v1.MinistryService.ListSchedules:output_type -> ministry.v1.ListSchedulesResponse
	29, // [29:37] is the sub-list for method output_type
	21, // [21:29] is the sub-list for method input_type
	21, // [21:21] is the sub-list for extension type_name
	21, // [21:21] is the sub-list for extension extendee
	0,  // [0:21] is the sub-list for field type_name
}

func init() { file_ministry_v1_ministry_proto_init() }
func file_ministry_v1_ministry_proto_init() {
	if File_ministry_v1_ministry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ministry_v1_ministry_proto_rawDesc), len(file_ministry_v1_ministry_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ministry_v1_ministry_proto_goTypes,
		DependencyIndexes: file_ministry_v1_ministry_proto_depIdxs,
		EnumInfos:         file_ministry_v1_ministry_proto_enumTypes,
		MessageInfos:      file_ministry_v1_ministry_proto_msgTypes,
	}.Build()
	File_ministry_v1_ministry_proto = out.File
	file_ministry_v1_ministry_proto_goTypes = nil
	file_ministry_v1_ministry_proto_depIdxs = nil
}
