package netbox

// Endpoint is a NetBox API path below /api/, without slashes at either end.
type Endpoint string

const (
	Sites         Endpoint = "dcim/sites"
	Locations     Endpoint = "dcim/locations"
	Regions       Endpoint = "dcim/regions"
	SiteGroups    Endpoint = "dcim/site-groups"
	DeviceRoles   Endpoint = "dcim/device-roles"
	Manufacturers Endpoint = "dcim/manufacturers"
	Platforms     Endpoint = "dcim/platforms"
	DeviceTypes   Endpoint = "dcim/device-types"
	Devices       Endpoint = "dcim/devices"
	Interfaces    Endpoint = "dcim/interfaces"
	MACAddresses  Endpoint = "dcim/mac-addresses"
	Tenants       Endpoint = "tenancy/tenants"
	TenantGroups  Endpoint = "tenancy/tenant-groups"
	VLANs         Endpoint = "ipam/vlans"
	VLANGroups    Endpoint = "ipam/vlan-groups"
	Prefixes      Endpoint = "ipam/prefixes"
	Aggregates    Endpoint = "ipam/aggregates"
	RIRs          Endpoint = "ipam/rirs"
	Roles         Endpoint = "ipam/roles"
	IPAddresses   Endpoint = "ipam/ip-addresses"
	Tags          Endpoint = "extras/tags"
)
