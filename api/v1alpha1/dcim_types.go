package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SiteStatus is the operational status of a site.
// +kubebuilder:validation:Enum=active;planned;staging;decommissioning;retired
type SiteStatus string

// DeviceStatus is the operational status of a device.
// +kubebuilder:validation:Enum=active;offline;planned;staged;failed;inventory;decommissioning
type DeviceStatus string

// NetBoxSiteSpec defines the desired state of a NetBox site.
type NetBoxSiteSpec struct {
	Name string `json:"name"`

	// Slug defaults to a slugified name.
	// +optional
	Slug string `json:"slug,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	PhysicalAddress string `json:"physicalAddress,omitempty"`
	// +optional
	ShippingAddress string `json:"shippingAddress,omitempty"`

	// Latitude in decimal degrees, e.g. "52.370216".
	// +kubebuilder:validation:Pattern=`^-?[0-9]{1,2}(\.[0-9]{1,6})?$`
	// +optional
	Latitude string `json:"latitude,omitempty"`

	// Longitude in decimal degrees, e.g. "4.895168".
	// +kubebuilder:validation:Pattern=`^-?[0-9]{1,3}(\.[0-9]{1,6})?$`
	// +optional
	Longitude string `json:"longitude,omitempty"`

	// +optional
	Tenant *ResourceReference `json:"tenant,omitempty"`
	// +optional
	Region *ResourceReference `json:"region,omitempty"`
	// +optional
	SiteGroup *ResourceReference `json:"siteGroup,omitempty"`

	// +kubebuilder:default=active
	// +optional
	Status SiteStatus `json:"status,omitempty"`

	// +optional
	Facility string `json:"facility,omitempty"`
	// +optional
	TimeZone string `json:"timeZone,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxLocationSpec defines the desired state of a NetBox location.
type NetBoxLocationSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`

	// Site the location belongs to.
	Site ResourceReference `json:"site"`

	// Parent location.
	// +optional
	Parent *ResourceReference `json:"parent,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
}

// NetBoxRegionSpec defines the desired state of a NetBox region.
type NetBoxRegionSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Parent *ResourceReference `json:"parent,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
}

// NetBoxSiteGroupSpec defines the desired state of a NetBox site group.
type NetBoxSiteGroupSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Parent *ResourceReference `json:"parent,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
}

// NetBoxDeviceRoleSpec defines the desired state of a NetBox device role.
type NetBoxDeviceRoleSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`

	// Color as six hex digits without a leading #.
	// +kubebuilder:validation:Pattern=`^[0-9a-fA-F]{6}$`
	// +optional
	Color string `json:"color,omitempty"`

	// +optional
	VMRole bool `json:"vmRole,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxManufacturerSpec defines the desired state of a NetBox manufacturer.
type NetBoxManufacturerSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
}

// NetBoxPlatformSpec defines the desired state of a NetBox platform.
type NetBoxPlatformSpec struct {
	Name string `json:"name"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	Manufacturer *ResourceReference `json:"manufacturer,omitempty"`
	// +optional
	NapalmDriver string `json:"napalmDriver,omitempty"`
	// +optional
	NapalmArgs string `json:"napalmArgs,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxDeviceTypeSpec defines the desired state of a NetBox device type.
type NetBoxDeviceTypeSpec struct {
	Manufacturer ResourceReference `json:"manufacturer"`
	Model        string            `json:"model"`
	// +optional
	Slug string `json:"slug,omitempty"`
	// +optional
	PartNumber string `json:"partNumber,omitempty"`

	// UHeight is the height in rack units, in steps of 0.5.
	// +kubebuilder:validation:Pattern=`^[0-9]+(\.[05])?$`
	// +kubebuilder:default="1"
	// +optional
	UHeight string `json:"uHeight,omitempty"`

	// +optional
	IsFullDepth bool `json:"isFullDepth,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// PrimaryIPReference selects a device's primary address either through an
// IPClaim or by literal address in CIDR notation.
type PrimaryIPReference struct {
	// +optional
	IPClaimRef *ResourceReference `json:"ipClaimRef,omitempty"`
	// +optional
	Address string `json:"address,omitempty"`
}

// NetBoxDeviceSpec defines the desired state of a NetBox device.
type NetBoxDeviceSpec struct {
	// Name defaults to the object name.
	// +optional
	Name string `json:"name,omitempty"`

	DeviceType ResourceReference `json:"deviceType"`
	DeviceRole ResourceReference `json:"deviceRole"`
	Site       ResourceReference `json:"site"`

	// +optional
	Location *ResourceReference `json:"location,omitempty"`
	// +optional
	Tenant *ResourceReference `json:"tenant,omitempty"`
	// +optional
	Platform *ResourceReference `json:"platform,omitempty"`

	// +optional
	Serial string `json:"serial,omitempty"`
	// +optional
	AssetTag string `json:"assetTag,omitempty"`

	// +kubebuilder:default=active
	// +optional
	Status DeviceStatus `json:"status,omitempty"`

	// +optional
	PrimaryIP4 *PrimaryIPReference `json:"primaryIp4,omitempty"`
	// +optional
	PrimaryIP6 *PrimaryIPReference `json:"primaryIp6,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// NetBoxInterfaceSpec defines the desired state of a device interface.
type NetBoxInterfaceSpec struct {
	// Device is the name of a NetBoxDevice in the same namespace.
	Device string `json:"device"`
	Name   string `json:"name"`

	// Type is a NetBox interface type such as 1000base-t.
	// +kubebuilder:default=other
	// +optional
	Type string `json:"type,omitempty"`

	// +kubebuilder:default=true
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// +optional
	MACAddress string `json:"macAddress,omitempty"`

	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65536
	// +optional
	MTU *int32 `json:"mtu,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
}

// NetBoxMACAddressSpec defines the desired state of a NetBox MAC address object.
// MAC address objects require NetBox 4.2 or later.
type NetBoxMACAddressSpec struct {
	MACAddress string `json:"macAddress"`

	// Interface to assign the address to, as "device-name/interface-name".
	// +optional
	Interface string `json:"interface,omitempty"`

	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Comments string `json:"comments,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbsite
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// NetBoxSite is the Schema for the netboxsites API.
type NetBoxSite struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxSiteSpec       `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxSiteList contains a list of NetBoxSite.
type NetBoxSiteList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxSite `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbloc
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxLocation is the Schema for the netboxlocations API.
type NetBoxLocation struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxLocationSpec   `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxLocationList contains a list of NetBoxLocation.
type NetBoxLocationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxLocation `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbregion
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxRegion is the Schema for the netboxregions API.
type NetBoxRegion struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxRegionSpec     `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxRegionList contains a list of NetBoxRegion.
type NetBoxRegionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxRegion `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbsitegroup
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxSiteGroup is the Schema for the netboxsitegroups API.
type NetBoxSiteGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxSiteGroupSpec  `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxSiteGroupList contains a list of NetBoxSiteGroup.
type NetBoxSiteGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxSiteGroup `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbdevrole
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxDeviceRole is the Schema for the netboxdeviceroles API.
type NetBoxDeviceRole struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxDeviceRoleSpec `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxDeviceRoleList contains a list of NetBoxDeviceRole.
type NetBoxDeviceRoleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxDeviceRole `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbmfr
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxManufacturer is the Schema for the netboxmanufacturers API.
type NetBoxManufacturer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxManufacturerSpec `json:"spec,omitempty"`
	Status NetBoxResourceStatus   `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxManufacturerList contains a list of NetBoxManufacturer.
type NetBoxManufacturerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxManufacturer `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbplatform
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxPlatform is the Schema for the netboxplatforms API.
type NetBoxPlatform struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxPlatformSpec   `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxPlatformList contains a list of NetBoxPlatform.
type NetBoxPlatformList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxPlatform `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbdevtype
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxDeviceType is the Schema for the netboxdevicetypes API.
type NetBoxDeviceType struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxDeviceTypeSpec `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxDeviceTypeList contains a list of NetBoxDeviceType.
type NetBoxDeviceTypeList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxDeviceType `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbdev
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// NetBoxDevice is the Schema for the netboxdevices API.
type NetBoxDevice struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxDeviceSpec     `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxDeviceList contains a list of NetBoxDevice.
type NetBoxDeviceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxDevice `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbif
// +kubebuilder:printcolumn:name="Device",type=string,JSONPath=`.spec.device`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxInterface is the Schema for the netboxinterfaces API.
type NetBoxInterface struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxInterfaceSpec  `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxInterfaceList contains a list of NetBoxInterface.
type NetBoxInterfaceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxInterface `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=nbmac
// +kubebuilder:printcolumn:name="MAC",type=string,JSONPath=`.spec.macAddress`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="NetBox ID",type=integer,JSONPath=`.status.netboxId`

// NetBoxMACAddress is the Schema for the netboxmacaddresses API.
type NetBoxMACAddress struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NetBoxMACAddressSpec `json:"spec,omitempty"`
	Status NetBoxResourceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NetBoxMACAddressList contains a list of NetBoxMACAddress.
type NetBoxMACAddressList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NetBoxMACAddress `json:"items"`
}
