package v1alpha1

import (
	"encoding/json"
	"strings"
)

// Kind names served by this API group.
const (
	KindSite         = "NetBoxSite"
	KindLocation     = "NetBoxLocation"
	KindRegion       = "NetBoxRegion"
	KindSiteGroup    = "NetBoxSiteGroup"
	KindDeviceRole   = "NetBoxDeviceRole"
	KindManufacturer = "NetBoxManufacturer"
	KindPlatform     = "NetBoxPlatform"
	KindDeviceType   = "NetBoxDeviceType"
	KindDevice       = "NetBoxDevice"
	KindInterface    = "NetBoxInterface"
	KindMACAddress   = "NetBoxMACAddress"
	KindTenant       = "NetBoxTenant"
	KindVLAN         = "NetBoxVLAN"
	KindPrefix       = "NetBoxPrefix"
	KindAggregate    = "NetBoxAggregate"
	KindRole         = "NetBoxRole"
	KindTag          = "NetBoxTag"
	KindIPPool       = "IPPool"
	KindIPClaim      = "IPClaim"
)

// ResourceState is the reconciliation state of a NetBox-backed resource.
// +kubebuilder:validation:Enum=Pending;Created;Updated;Failed;pending;created;updated;failed
type ResourceState string

const (
	// StatePending means no NetBox record is confirmed yet.
	StatePending ResourceState = "Pending"
	// StateCreated means a live NetBox record corresponds to the resource.
	StateCreated ResourceState = "Created"
	// StateUpdated is accepted on read; the operator itself writes Created.
	StateUpdated ResourceState = "Updated"
	// StateFailed means the last attempt failed; see the error field.
	StateFailed ResourceState = "Failed"
)

// ParseResourceState maps any casing of a known state to its canonical form.
// Unknown values are returned unchanged.
func ParseResourceState(s string) ResourceState {
	for _, known := range []ResourceState{StatePending, StateCreated, StateUpdated, StateFailed} {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return ResourceState(s)
}

// UnmarshalJSON accepts legacy lowercase states.
func (s *ResourceState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseResourceState(raw)
	return nil
}

// HasRecord reports whether the state implies a confirmed NetBox record.
func (s ResourceState) HasRecord() bool {
	return s == StateCreated || s == StateUpdated
}

// ClaimState is the allocation state of an IPClaim.
// +kubebuilder:validation:Enum=Pending;Allocated;Failed;pending;allocated;failed
type ClaimState string

const (
	ClaimPending   ClaimState = "Pending"
	ClaimAllocated ClaimState = "Allocated"
	ClaimFailed    ClaimState = "Failed"
)

// ParseClaimState maps any casing of a known claim state to its canonical form.
func ParseClaimState(s string) ClaimState {
	for _, known := range []ClaimState{ClaimPending, ClaimAllocated, ClaimFailed} {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return ClaimState(s)
}

// UnmarshalJSON accepts legacy lowercase states.
func (s *ClaimState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseClaimState(raw)
	return nil
}

// ResourceReference points at another custom resource of this API group.
type ResourceReference struct {
	// APIGroup of the referenced object. Defaults to dcops.microscaler.io.
	// +optional
	APIGroup string `json:"apiGroup,omitempty"`

	// Kind of the referenced object, e.g. NetBoxSite.
	Kind string `json:"kind"`

	// Name of the referenced object.
	Name string `json:"name"`

	// Namespace of the referenced object. Defaults to the referrer's namespace.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// NetBoxResourceStatus is the observed state shared by every NetBox-backed kind.
type NetBoxResourceStatus struct {
	// NetBoxID is the id of the corresponding NetBox record.
	// +optional
	NetBoxID *int64 `json:"netboxId,omitempty"`

	// NetBoxURL is the API URL of the corresponding NetBox record.
	// +optional
	NetBoxURL *string `json:"netboxUrl,omitempty"`

	// +optional
	State ResourceState `json:"state,omitempty"`

	// Error describes why the resource is not Created.
	// +optional
	Error *string `json:"error,omitempty"`

	// ObservedGeneration is the generation the status was computed for.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}
