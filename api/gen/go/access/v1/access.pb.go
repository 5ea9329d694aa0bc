// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: access/v1/access.proto

package accessv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

// CapabilityDefinition is one entry in the capability catalog.
type CapabilityDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Capability    string                 `protobuf:"bytes,1,opt,name=capability,proto3" json:"capability,omitempty"`
	Label         string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CapabilityDefinition) Reset() {
	*x = CapabilityDefinition{}
	mi := &file_access_v1_access_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CapabilityDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CapabilityDefinition) ProtoMessage() {}

func (x *CapabilityDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_access_v1_access_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CapabilityDefinition.ProtoReflect.Descriptor instead.
func (*CapabilityDefinition) Descriptor() ([]byte, []int) {
	return file_access_v1_access_proto_rawDescGZIP(), []int{0}
}

func (x *CapabilityDefinition) GetCapability() string {
	if x != nil {
		return x.Capability
	}
	return ""
}

func (x *CapabilityDefinition) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type ListCapabilitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCapabilitiesRequest) Reset() {
	*x = ListCapabilitiesRequest{}
	mi := &file_access_v1_access_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCapabilitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCapabilitiesRequest) ProtoMessage() {}

func (x *ListCapabilitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_access_v1_access_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCapabilitiesRequest.ProtoReflect.Descriptor instead.
func (*ListCapabilitiesRequest) Descriptor() ([]byte, []int) {
	return file_access_v1_access_proto_rawDescGZIP(), []int{1}
}

type ListCapabilitiesResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Capabilities  []*CapabilityDefinition `protobuf:"bytes,1,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCapabilitiesResponse) Reset() {
	*x = ListCapabilitiesResponse{}
	mi := &file_access_v1_access_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCapabilitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCapabilitiesResponse) ProtoMessage() {}

func (x *ListCapabilitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_access_v1_access_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCapabilitiesResponse.ProtoReflect.Descriptor instead.
func (*ListCapabilitiesResponse) Descriptor() ([]byte, []int) {
	return file_access_v1_access_proto_rawDescGZIP(), []int{2}
}

func (x *ListCapabilitiesResponse) GetCapabilities() []*CapabilityDefinition {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

type ResolveRoleCapabilitiesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Role label, for example ministry_leader or administrator.
	Role          string `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRoleCapabilitiesRequest) Reset() {
	*x = ResolveRoleCapabilitiesRequest{}
	mi := &file_access_v1_access_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRoleCapabilitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRoleCapabilitiesRequest) ProtoMessage() {}

func (x *ResolveRoleCapabilitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_access_v1_access_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRoleCapabilitiesRequest.ProtoReflect.Descriptor instead.
func (*ResolveRoleCapabilitiesRequest) Descriptor() ([]byte, []int) {
	return file_access_v1_access_proto_rawDescGZIP(), []int{3}
}

func (x *ResolveRoleCapabilitiesRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type ResolveRoleCapabilitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Capabilities  []string               `protobuf:"bytes,1,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveRoleCapabilitiesResponse) Reset() {
	*x = ResolveRoleCapabilitiesResponse{}
	mi := &file_access_v1_access_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveRoleCapabilitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveRoleCapabilitiesResponse) ProtoMessage() {}

func (x *ResolveRoleCapabilitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_access_v1_access_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveRoleCapabilitiesResponse.ProtoReflect.Descriptor instead.
func (*ResolveRoleCapabilitiesResponse) Descriptor() ([]byte, []int) {
	return file_access_v1_access_proto_rawDescGZIP(), []int{4}
}

func (x *ResolveRoleCapabilitiesResponse) GetCapabilities() []string {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

var File_access_v1_access_proto protoreflect.FileDescriptor

const file_access_v1_access_proto_rawDesc = "" +
	"\n" +
	"\x16access/v1/access.proto\x12\taccess.v1\"L\n" +
	"\x14CapabilityDefinition\x12\x1e\n" +
	"\n" +
	"capability\x18\x01 \x01(\tR\n" +
	"capability\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\"\x19\n" +
	"\x17ListCapabilitiesRequest\"_\n" +
	"\x18ListCapabilitiesResponse\x12C\n" +
	"\fcapabilities\x18\x01 \x03(\v2\x1f.access.v1.CapabilityDefinitionR\fcapabilities\"4\n" +
	"\x1eResolveRoleCapabilitiesRequest\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\"E\n" +
	"\x1fResolveRoleCapabilitiesResponse\x12\"\n" +
	"\fcapabilities\x18\x01 \x03(\tR\fcapabilities2\xde\x01\n" +
	"\rAccessService\x12[\n" +
	"\x10ListCapabilities\x12\".access.v1.ListCapabilitiesRequest\x1a#.access.v1.ListCapabilitiesResponse\x12p\n" +
	"\x17ResolveRoleCapabilities\x12).access.v1.ResolveRoleCapabilitiesRequest\x1a*.access.v1.ResolveRoleCapabilitiesResponseBFZDgithub.com/louisbranch/shepherd.church/api/gen/go/access/v1;accessv1b\x06proto3"

var (
	file_access_v1_access_proto_rawDescOnce sync.Once
	file_access_v1_access_proto_rawDescData []byte
)

func file_access_v1_access_proto_rawDescGZIP() []byte {
	file_access_v1_access_proto_rawDescOnce.Do(func() {
		file_access_v1_access_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_access_v1_access_proto_rawDesc), len(file_access_v1_access_proto_rawDesc)))
	})
	return file_access_v1_access_proto_rawDescData
}

var file_access_v1_access_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_access_v1_access_proto_goTypes = []any{
	(*CapabilityDefinition)(nil),            // 0: access.v1.CapabilityDefinition
	(*ListCapabilitiesRequest)(nil),         // 1: access.v1.ListCapabilitiesRequest
	(*ListCapabilitiesResponse)(nil),        // 2: access.v1.ListCapabilitiesResponse
	(*ResolveRoleCapabilitiesRequest)(nil),  // 3: access.v1.ResolveRoleCapabilitiesRequest
	(*ResolveRoleCapabilitiesResponse)(nil), // 4: access.v1.ResolveRoleCapabilitiesResponse
}
var file_access_v1_access_proto_depIdxs = []int32{
	0, // 0: access.v1.ListCapabilitiesResponse.capabilities:type_name -> access.v1.CapabilityDefinition
	1, // 1: access.v1.AccessService.ListCapabilities:input_type -> access.v1.ListCapabilitiesRequest
	3, // 2: access.v1.AccessService.ResolveRoleCapabilities:input_type -> access.v1.ResolveRoleCapabilitiesRequest
	2, // 3: access.v1.AccessService.ListCapabilities:output_type -> access.v1.ListCapabilitiesResponse
	4, // 4: access.v1.AccessService.ResolveRoleCapabilities:output_type -> access.v1.ResolveRoleCapabilitiesResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_access_v1_access_proto_init() }
func file_access_v1_access_proto_init() {
	if File_access_v1_access_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_access_v1_access_proto_rawDesc), len(file_access_v1_access_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_access_v1_access_proto_goTypes,
		DependencyIndexes: file_access_v1_access_proto_depIdxs,
		MessageInfos:      file_access_v1_access_proto_msgTypes,
	}.Build()
	File_access_v1_access_proto = out.File
	file_access_v1_access_proto_goTypes = nil
	file_access_v1_access_proto_depIdxs = nil
}
