// Package v1alpha1 contains API Schema definitions for the dcops.microscaler.io v1alpha1 API group
// +kubebuilder:object:generate=true
// +groupName=dcops.microscaler.io
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "dcops.microscaler.io", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme
	AddToScheme = SchemeBuilder.AddToScheme
)

func init() {
	SchemeBuilder.Register(
		&NetBoxSite{}, &NetBoxSiteList{},
		&NetBoxLocation{}, &NetBoxLocationList{},
		&NetBoxRegion{}, &NetBoxRegionList{},
		&NetBoxSiteGroup{}, &NetBoxSiteGroupList{},
		&NetBoxDeviceRole{}, &NetBoxDeviceRoleList{},
		&NetBoxManufacturer{}, &NetBoxManufacturerList{},
		&NetBoxPlatform{}, &NetBoxPlatformList{},
		&NetBoxDeviceType{}, &NetBoxDeviceTypeList{},
		&NetBoxDevice{}, &NetBoxDeviceList{},
		&NetBoxInterface{}, &NetBoxInterfaceList{},
		&NetBoxMACAddress{}, &NetBoxMACAddressList{},
		&NetBoxTenant{}, &NetBoxTenantList{},
		&NetBoxVLAN{}, &NetBoxVLANList{},
		&NetBoxPrefix{}, &NetBoxPrefixList{},
		&NetBoxAggregate{}, &NetBoxAggregateList{},
		&NetBoxRole{}, &NetBoxRoleList{},
		&NetBoxTag{}, &NetBoxTagList{},
		&IPPool{}, &IPPoolList{},
		&IPClaim{}, &IPClaimList{},
	)
}
