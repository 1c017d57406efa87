package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NetBoxTagSpec defines the desired state of a NetBox tag.
type NetBoxTagSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +kubebuilder:validation:Pattern=`^[0-9a-fA-F]{6}$`
	// +optional
	Color string `json:"color,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbtag
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxTag is the Schema for the netboxtags API.
type NetBoxTag struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxTagSpec        `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxTagList contains a list of NetBoxTag.
type NetBoxTagList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxTag `json:"items"`
}
