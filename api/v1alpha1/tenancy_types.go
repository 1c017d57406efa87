package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NetBoxTenantSpec defines the desired state of a NetBox tenant.
type NetBoxTenantSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`

	// Group is a tenant group reference. Tenant groups are not managed by this
	// operator, so the reference degrades to absent unless it resolves.
	// +optional
	Group *ResourceReference `json:"group,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbtenant
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxTenant is the Schema for the netboxtenants API.
type NetBoxTenant struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxTenantSpec     `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxTenantList contains a list of NetBoxTenant.
type NetBoxTenantList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxTenant `json:"items"`
}
