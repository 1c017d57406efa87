package v1alpha1

import (
	"strconv"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// NetBoxObject is implemented by every kind reconciled against NetBox. It lets
// the reconcile engine read and write status without knowing the concrete kind.
// +kubebuilder:object:generate=false
type NetBoxObject interface {
	metav1.Object
	runtime.Object

	// ObservedStatus returns the stored status in kind-neutral form.
	ObservedStatus() ObservedStatus

	// StatusPatch renders o as the body of a JSON merge patch for .status.
	// Cleared fields are rendered as explicit nulls.
	StatusPatch(o ObservedStatus) map[string]any
}

// ObservedStatus is the kind-neutral view of a resource status.
// +kubebuilder:object:generate=false
type ObservedStatus struct {
	ID                 *int64
	URL                string
	State              ResourceState
	Error              string
	ObservedGeneration int64

	// Extra holds kind specific fields that are compared and patched together
	// with the common ones, e.g. the allocated address of an IPClaim.
	Extra map[string]any
}

// Observed converts the stored status into its kind-neutral form.
func (s *NetBoxResourceStatus) Observed() ObservedStatus {
	o := ObservedStatus{
		ID:                 s.NetBoxID,
		State:              s.State,
		ObservedGeneration: s.ObservedGeneration,
	}
	if s.NetBoxURL != nil {
		o.URL = *s.NetBoxURL
	}
	if s.Error != nil {
		o.Error = *s.Error
	}
	return o
}

// ResourcePatch renders the common status fields.
func (o ObservedStatus) ResourcePatch() map[string]any {
	return map[string]any{
		"netboxId":           nullableID(o.ID),
		"netboxUrl":          nullableString(o.URL),
		"state":              string(o.State),
		"error":              nullableString(o.Error),
		"observedGeneration": o.ObservedGeneration,
	}
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// IDFromURL extracts the trailing numeric id of a NetBox API URL such as
// https://netbox/api/ipam/ip-addresses/42/.
func IDFromURL(url string) (int64, bool) {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *NetBoxSite) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxSite) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxLocation) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxLocation) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxRegion) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxRegion) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxSiteGroup) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxSiteGroup) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxDeviceRole) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxDeviceRole) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxManufacturer) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxManufacturer) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxPlatform) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxPlatform) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxDeviceType) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxDeviceType) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxDevice) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxDevice) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxInterface) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxInterface) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxMACAddress) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxMACAddress) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxTenant) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxTenant) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxVLAN) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxVLAN) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxPrefix) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxPrefix) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxAggregate) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxAggregate) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxRole) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxRole) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

func (r *NetBoxTag) ObservedStatus() ObservedStatus { return r.Status.Observed() }
func (r *NetBoxTag) StatusPatch(o ObservedStatus) map[string]any {
	return o.ResourcePatch()
}

// Extra keys used by IPPool.
const (
	ExtraTotalIPs     = "totalIps"
	ExtraAllocatedIPs = "allocatedIps"
	ExtraAvailableIPs = "availableIps"
)

// ObservedStatus maps the pool's prefix id and url onto the common fields and
// carries the address counters as extras.
func (r *IPPool) ObservedStatus() ObservedStatus {
	s := r.Status
	o := ObservedStatus{
		ID:                 s.NetBoxPrefixID,
		State:              s.State,
		ObservedGeneration: s.ObservedGeneration,
		Extra: map[string]any{
			ExtraTotalIPs:     s.TotalIPs,
			ExtraAllocatedIPs: s.AllocatedIPs,
			ExtraAvailableIPs: s.AvailableIPs,
		},
	}
	if s.NetBoxPrefixURL != nil {
		o.URL = *s.NetBoxPrefixURL
	}
	if s.Error != nil {
		o.Error = *s.Error
	}
	return o
}

func (r *IPPool) StatusPatch(o ObservedStatus) map[string]any {
	return map[string]any{
		"netboxPrefixId":     nullableID(o.ID),
		"netboxPrefixUrl":    nullableString(o.URL),
		"state":              string(o.State),
		"error":              nullableString(o.Error),
		"observedGeneration": o.ObservedGeneration,
		"totalIps":           extraInt(o.Extra, ExtraTotalIPs),
		"allocatedIps":       extraInt(o.Extra, ExtraAllocatedIPs),
		"availableIps":       extraInt(o.Extra, ExtraAvailableIPs),
	}
}

func extraInt(extra map[string]any, key string) int64 {
	v, _ := extra[key].(int64)
	return v
}

// ExtraIP is the IPClaim extra key holding the allocated address.
const ExtraIP = "ip"

// ObservedStatus maps Allocated onto Created and derives the id from
// netboxIpRef, so claims share the engine's state machine.
func (r *IPClaim) ObservedStatus() ObservedStatus {
	s := r.Status
	o := ObservedStatus{
		ObservedGeneration: s.ObservedGeneration,
		Extra:              map[string]any{ExtraIP: ""},
	}
	switch s.State {
	case ClaimAllocated:
		o.State = StateCreated
	case ClaimFailed:
		o.State = StateFailed
	case ClaimPending:
		o.State = StatePending
	}
	if s.NetBoxIPRef != nil {
		o.URL = *s.NetBoxIPRef
		if id, ok := IDFromURL(o.URL); ok {
			o.ID = &id
		}
	}
	if s.IP != nil {
		o.Extra[ExtraIP] = *s.IP
	}
	if s.Error != nil {
		o.Error = *s.Error
	}
	return o
}

func (r *IPClaim) StatusPatch(o ObservedStatus) map[string]any {
	state := ClaimPending
	switch {
	case o.State.HasRecord():
		state = ClaimAllocated
	case o.State == StateFailed:
		state = ClaimFailed
	}
	ip, _ := o.Extra[ExtraIP].(string)
	return map[string]any{
		"ip":                 nullableString(ip),
		"state":              string(state),
		"netboxIpRef":        nullableString(o.URL),
		"error":              nullableString(o.Error),
		"observedGeneration": o.ObservedGeneration,
	}
}
