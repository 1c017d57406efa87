package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PrefixStatus is the NetBox status of a prefix.
// +kubebuilder:validation:Enum=active;reserved;deprecated;container
type PrefixStatus string

// VLANStatus is the NetBox status of a VLAN.
// +kubebuilder:validation:Enum=active;reserved;deprecated
type VLANStatus string

// AllocationStrategy selects how an IPPool hands out addresses.
// +kubebuilder:validation:Enum=sequential;random
type AllocationStrategy string

const (
	AllocationSequential AllocationStrategy = "sequential"
	AllocationRandom     AllocationStrategy = "random"
)

// NetBoxPrefixSpec defines the desired state of a NetBox prefix.
type NetBoxPrefixSpec struct {
	// Prefix in CIDR notation.
	Prefix string `json:"prefix"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Site *ResourceReference `json:"site,omitempty"`
	// +optional
	Tenant *ResourceReference `json:"tenant,omitempty"`

	// Aggregate is informational; NetBox derives the containing aggregate itself.
	// +optional
	Aggregate *ResourceReference `json:"aggregate,omitempty"`

	// +optional
	VLAN *ResourceReference `json:"vlan,omitempty"`

	// +kubebuilder:default=active
	// +optional
	Status PrefixStatus `json:"status,omitempty"`

	// +optional
	Role *ResourceReference `json:"role,omitempty"`
	// +optional
	Tags []ResourceReference `json:"tags,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxAggregateSpec defines the desired state of a NetBox aggregate.
type NetBoxAggregateSpec struct {
	// Prefix in CIDR notation.
	Prefix string `json:"prefix"`

	// RIR name. The RIR is created in NetBox when missing.
	// +kubebuilder:default=RFC1918
	// +optional
	RIR string `json:"rir,omitempty"`

	// DateAllocated as YYYY-MM-DD.
	// +kubebuilder:validation:Pattern=`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
	// +optional
	DateAllocated string `json:"dateAllocated,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxVLANSpec defines the desired state of a NetBox VLAN.
type NetBoxVLANSpec struct {
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=4094
	VID  int32  `json:"vid"`
	Name string `json:"name"`

	// +optional
	Site *ResourceReference `json:"site,omitempty"`
	// +optional
	Group *ResourceReference `json:"group,omitempty"`
	// +optional
	Tenant *ResourceReference `json:"tenant,omitempty"`
	// +optional
	Role *ResourceReference `json:"role,omitempty"`

	// +kubebuilder:default=active
	// +optional
	Status VLANStatus `json:"status,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxRoleSpec defines the desired state of a NetBox IPAM role.
type NetBoxRoleSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +kubebuilder:validation:Minimum=0
	// +optional
	Weight *int32 `json:"weight,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// IPPoolSpec defines a pool of addresses backed by a NetBox prefix.
type IPPoolSpec struct {
	// NetBoxPrefixRef names a NetBoxPrefix. A numeric name is taken as a NetBox
	// prefix id directly.
	NetBoxPrefixRef ResourceReference `json:"netboxPrefixRef"`

	// +optional
	Role string `json:"role,omitempty"`

	// +kubebuilder:default=sequential
	// +optional
	AllocationStrategy AllocationStrategy `json:"allocationStrategy,omitempty"`
}

// IPPoolStatus defines the observed state of an IPPool.
type IPPoolStatus struct {
	// +optional
	State ResourceState `json:"state,omitempty"`
	// +optional
	NetBoxPrefixID *int64 `json:"netboxPrefixId,omitempty"`
	// +optional
	NetBoxPrefixURL *string `json:"netboxPrefixUrl,omitempty"`

	// TotalIPs is allocated plus available addresses.
	TotalIPs     int64 `json:"totalIps"`
	AllocatedIPs int64 `json:"allocatedIps"`
	AvailableIPs int64 `json:"availableIps"`

	// +optional
	Error *string `json:"error,omitempty"`
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// IPPoolRef names the pool an IPClaim allocates from.
type IPPoolRef struct {
	Name string `json:"name"`
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// DeviceRef names the device an IPClaim is for.
type DeviceRef struct {
	Name string `json:"name"`
	// +optional
	Interface string `json:"interface,omitempty"`
	// NetBoxDeviceRef is an optional NetBox device URL for bookkeeping.
	// +optional
	NetBoxDeviceRef string `json:"netboxDeviceRef,omitempty"`
}

// IPClaimSpec requests one address from an IPPool.
type IPClaimSpec struct {
	PoolRef   IPPoolRef `json:"poolRef"`
	DeviceRef DeviceRef `json:"deviceRef"`

	// PreferredIP in CIDR notation, e.g. 10.0.0.10/24.
	// +optional
	PreferredIP string `json:"preferredIp,omitempty"`
}

// IPClaimStatus defines the observed state of an IPClaim.
type IPClaimStatus struct {
	// IP is the allocated address in CIDR notation.
	// +optional
	IP *string `json:"ip,omitempty"`
	// +optional
	State ClaimState `json:"state,omitempty"`
	// NetBoxIPRef is the API URL of the NetBox IP address.
	// +optional
	NetBoxIPRef *string `json:"netboxIpRef,omitempty"`
	// +optional
	Error *string `json:"error,omitempty"`
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbprefix
// +kubebuilder:printcolumn:name="Prefix",type=string,JSONPath=`.spec.prefix`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxPrefix is the Schema for the netboxprefixes API.
type NetBoxPrefix struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxPrefixSpec     `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxPrefixList contains a list of NetBoxPrefix.
type NetBoxPrefixList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxPrefix `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbagg
// +kubebuilder:printcolumn:name="Prefix",type=string,JSONPath=`.spec.prefix`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxAggregate is the Schema for the netboxaggregates API.
type NetBoxAggregate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxAggregateSpec  `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxAggregateList contains a list of NetBoxAggregate.
type NetBoxAggregateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxAggregate `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbvlan
// +kubebuilder:printcolumn:name="VID",type=integer,JSONPath=`.spec.vid`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxVLAN is the Schema for the netboxvlans API.
type NetBoxVLAN struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxVLANSpec       `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxVLANList contains a list of NetBoxVLAN.
type NetBoxVLANList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxVLAN `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbrole
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxRole is the Schema for the netboxroles API.
type NetBoxRole struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxRoleSpec       `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxRoleList contains a list of NetBoxRole.
type NetBoxRoleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxRole `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=ippool
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Available",type=integer,JSONPath=`.status.availableIps`
// +kubebuilder:printcolumn:name="Allocated",type=integer,JSONPath=`.status.allocatedIps`

// IPPool is the Schema for the ippools API.
type IPPool struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   IPPoolSpec   `json:"spec,omitempty"`
	Status IPPoolStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// IPPoolList contains a list of IPPool.
type IPPoolList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IPPool `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=ipclaim
// +kubebuilder:printcolumn:name="IP",type=string,JSONPath=`.status.ip`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Pool",type=string,JSONPath=`.spec.poolRef.name`

// IPClaim is the Schema for the ipclaims API.
type IPClaim struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   IPClaimSpec   `json:"spec,omitempty"`
	Status IPClaimStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// IPClaimList contains a list of IPClaim.
type IPClaimList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IPClaim `json:"items"`
}
