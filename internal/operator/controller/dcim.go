package controller

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/log"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/engine"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/util/naming"
)

type siteMapper struct{ planner }

func (m *siteMapper) Kind() string                    { return dcopsv1alpha1.KindSite }
func (m *siteMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxSite{} }

func (m *siteMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	site, err := as[*dcopsv1alpha1.NetBoxSite](obj)
	if err != nil {
		return nil, err
	}
	spec := site.Spec

	tenant, err := m.ref(ctx, site, spec.Tenant, dcopsv1alpha1.KindTenant, engine.Soft)
	if err != nil {
		return nil, err
	}
	region, err := m.ref(ctx, site, spec.Region, dcopsv1alpha1.KindRegion, engine.Soft)
	if err != nil {
		return nil, err
	}
	group, err := m.ref(ctx, site, spec.SiteGroup, dcopsv1alpha1.KindSiteGroup, engine.Soft)
	if err != nil {
		return nil, err
	}

	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{
		"name":   spec.Name,
		"slug":   slug,
		"status": orDefault(string(spec.Status), "active"),
	}
	desired.str("description", spec.Description).
		str("physical_address", spec.PhysicalAddress).
		str("shipping_address", spec.ShippingAddress).
		str("facility", spec.Facility).
		str("time_zone", spec.TimeZone).
		str("comments", spec.Comments).
		id("tenant", tenant).
		id("region", region).
		id("group", group)
	if err := desired.float("latitude", "latitude", spec.Latitude); err != nil {
		return nil, err
	}
	if err := desired.float("longitude", "longitude", spec.Longitude); err != nil {
		return nil, err
	}

	return &engine.Plan{
		Endpoint: netbox.Sites,
		Describe: describe("site", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}

type locationMapper struct{ planner }

func (m *locationMapper) Kind() string                    { return dcopsv1alpha1.KindLocation }
func (m *locationMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxLocation{} }

func (m *locationMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	loc, err := as[*dcopsv1alpha1.NetBoxLocation](obj)
	if err != nil {
		return nil, err
	}
	spec := loc.Spec

	site, err := m.ref(ctx, loc, &spec.Site, dcopsv1alpha1.KindSite, engine.Hard)
	if err != nil {
		return nil, err
	}
	parent, err := m.ref(ctx, loc, spec.Parent, dcopsv1alpha1.KindLocation, engine.Soft)
	if err != nil {
		return nil, err
	}

	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug, "site": *site}
	desired.id("parent", parent).str("description", spec.Description)

	siteID := idFilter(*site)
	return &engine.Plan{
		Endpoint: netbox.Locations,
		Describe: describe("location", spec.Name),
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "site and slug", Filters: url.Values{"site_id": {siteID}, "slug": {slug}}},
			{Name: "site and name", Filters: url.Values{"site_id": {siteID}, "name": {spec.Name}}},
		},
		Match: func(rec netbox.Record) bool {
			return refEquals(rec, "site", site) && slugOrName(slug, spec.Name)(rec)
		},
	}, nil
}

type regionMapper struct{ planner }

func (m *regionMapper) Kind() string                    { return dcopsv1alpha1.KindRegion }
func (m *regionMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxRegion{} }

func (m *regionMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	region, err := as[*dcopsv1alpha1.NetBoxRegion](obj)
	if err != nil {
		return nil, err
	}
	spec := region.Spec
	parent, err := m.ref(ctx, region, spec.Parent, dcopsv1alpha1.KindRegion, engine.Soft)
	if err != nil {
		return nil, err
	}
	return nestedPlan(netbox.Regions, "region", spec.Name, spec.Slug, spec.Description, parent), nil
}

type siteGroupMapper struct{ planner }

func (m *siteGroupMapper) Kind() string                    { return dcopsv1alpha1.KindSiteGroup }
func (m *siteGroupMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxSiteGroup{} }

func (m *siteGroupMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	group, err := as[*dcopsv1alpha1.NetBoxSiteGroup](obj)
	if err != nil {
		return nil, err
	}
	spec := group.Spec
	parent, err := m.ref(ctx, group, spec.Parent, dcopsv1alpha1.KindSiteGroup, engine.Soft)
	if err != nil {
		return nil, err
	}
	return nestedPlan(netbox.SiteGroups, "site group", spec.Name, spec.Slug, spec.Description, parent), nil
}

// nestedPlan is the plan of a tree-shaped organizational record.
func nestedPlan(ep netbox.Endpoint, noun, name, slug, description string, parent *int64) *engine.Plan {
	slug = naming.SlugOr(slug, name)
	desired := fields{"name": name, "slug": slug}
	desired.id("parent", parent).str("description", description)
	return &engine.Plan{
		Endpoint: ep,
		Describe: describe(noun, name),
		Desired:  desired,
		Lookups:  slugLookups(slug, name),
		Match:    slugOrName(slug, name),
	}
}

type deviceRoleMapper struct{ planner }

func (m *deviceRoleMapper) Kind() string                    { return dcopsv1alpha1.KindDeviceRole }
func (m *deviceRoleMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxDeviceRole{} }

func (m *deviceRoleMapper) Plan(_ context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	role, err := as[*dcopsv1alpha1.NetBoxDeviceRole](obj)
	if err != nil {
		return nil, err
	}
	spec := role.Spec
	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug, "vm_role": spec.VMRole}
	desired.str("color", color(spec.Color)).
		str("description", spec.Description)
	return &engine.Plan{
		Endpoint: netbox.DeviceRoles,
		Describe: describe("device role", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}

type manufacturerMapper struct{ planner }

func (m *manufacturerMapper) Kind() string                    { return dcopsv1alpha1.KindManufacturer }
func (m *manufacturerMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxManufacturer{} }

func (m *manufacturerMapper) Plan(_ context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	mf, err := as[*dcopsv1alpha1.NetBoxManufacturer](obj)
	if err != nil {
		return nil, err
	}
	spec := mf.Spec
	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug}
	desired.str("description", spec.Description)
	return &engine.Plan{
		Endpoint: netbox.Manufacturers,
		Describe: describe("manufacturer", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}

type platformMapper struct{ planner }

func (m *platformMapper) Kind() string                    { return dcopsv1alpha1.KindPlatform }
func (m *platformMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxPlatform{} }

func (m *platformMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	platform, err := as[*dcopsv1alpha1.NetBoxPlatform](obj)
	if err != nil {
		return nil, err
	}
	spec := platform.Spec
	manufacturer, err := m.ref(ctx, platform, spec.Manufacturer, dcopsv1alpha1.KindManufacturer, engine.Soft)
	if err != nil {
		return nil, err
	}
	if spec.NapalmDriver != "" || spec.NapalmArgs != "" {
		log.FromContext(ctx).V(1).Info("NAPALM settings are not supported by NetBox 4 and are ignored")
	}

	slug := naming.SlugOr(spec.Slug, spec.Name)
	desired := fields{"name": spec.Name, "slug": slug}
	desired.id("manufacturer", manufacturer).
		str("description", spec.Description)
	return &engine.Plan{
		Endpoint: netbox.Platforms,
		Describe: describe("platform", spec.Name),
		Desired:  desired,
		Lookups:  slugLookups(slug, spec.Name),
		Match:    slugOrName(slug, spec.Name),
	}, nil
}

type deviceTypeMapper struct{ planner }

func (m *deviceTypeMapper) Kind() string                    { return dcopsv1alpha1.KindDeviceType }
func (m *deviceTypeMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxDeviceType{} }

func (m *deviceTypeMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	dt, err := as[*dcopsv1alpha1.NetBoxDeviceType](obj)
	if err != nil {
		return nil, err
	}
	spec := dt.Spec
	manufacturer, err := m.ref(ctx, dt, &spec.Manufacturer, dcopsv1alpha1.KindManufacturer, engine.Hard)
	if err != nil {
		return nil, err
	}

	slug := naming.SlugOr(spec.Slug, spec.Model)
	desired := fields{
		"manufacturer":  *manufacturer,
		"model":         spec.Model,
		"slug":          slug,
		"is_full_depth": spec.IsFullDepth,
	}
	desired.str("part_number", spec.PartNumber).
		str("description", spec.Description).
		str("comments", spec.Comments)
	if err := desired.float("u_height", "uHeight", orDefault(spec.UHeight, "1")); err != nil {
		return nil, err
	}

	mfID := idFilter(*manufacturer)
	return &engine.Plan{
		Endpoint: netbox.DeviceTypes,
		Describe: describe("device type", spec.Model),
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "manufacturer and slug", Filters: url.Values{"manufacturer_id": {mfID}, "slug": {slug}}},
			{Name: "manufacturer and model", Filters: url.Values{"manufacturer_id": {mfID}, "model": {spec.Model}}},
		},
		Match: func(rec netbox.Record) bool {
			return refEquals(rec, "manufacturer", manufacturer) &&
				(rec.String("slug") == slug || rec.String("model") == spec.Model)
		},
	}, nil
}

type deviceMapper struct{ planner }

func (m *deviceMapper) Kind() string                    { return dcopsv1alpha1.KindDevice }
func (m *deviceMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxDevice{} }

func (m *deviceMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	dev, err := as[*dcopsv1alpha1.NetBoxDevice](obj)
	if err != nil {
		return nil, err
	}
	spec := dev.Spec
	name := orDefault(spec.Name, dev.Name)

	deviceType, err := m.ref(ctx, dev, &spec.DeviceType, dcopsv1alpha1.KindDeviceType, engine.Hard)
	if err != nil {
		return nil, err
	}
	role, err := m.ref(ctx, dev, &spec.DeviceRole, dcopsv1alpha1.KindDeviceRole, engine.Hard)
	if err != nil {
		return nil, err
	}
	site, err := m.ref(ctx, dev, &spec.Site, dcopsv1alpha1.KindSite, engine.Hard)
	if err != nil {
		return nil, err
	}
	location, err := m.ref(ctx, dev, spec.Location, dcopsv1alpha1.KindLocation, engine.Soft)
	if err != nil {
		return nil, err
	}
	tenant, err := m.ref(ctx, dev, spec.Tenant, dcopsv1alpha1.KindTenant, engine.Soft)
	if err != nil {
		return nil, err
	}
	platform, err := m.ref(ctx, dev, spec.Platform, dcopsv1alpha1.KindPlatform, engine.Soft)
	if err != nil {
		return nil, err
	}
	ip4, err := m.primaryIP(ctx, dev, spec.PrimaryIP4)
	if err != nil {
		return nil, err
	}
	ip6, err := m.primaryIP(ctx, dev, spec.PrimaryIP6)
	if err != nil {
		return nil, err
	}
	debugRef(ctx, "primary_ip4", ip4)
	debugRef(ctx, "primary_ip6", ip6)

	desired := fields{
		"name":        name,
		"device_type": *deviceType,
		"role":        *role,
		"site":        *site,
		"status":      orDefault(string(spec.Status), "active"),
	}
	desired.id("location", location).
		id("tenant", tenant).
		id("platform", platform).
		id("primary_ip4", ip4).
		id("primary_ip6", ip6).
		str("serial", spec.Serial).
		str("asset_tag", spec.AssetTag).
		str("description", spec.Description).
		str("comments", spec.Comments)

	lookups := []engine.Lookup{
		{Name: "site and name", Filters: url.Values{"site_id": {idFilter(*site)}, "name": {name}}},
	}
	if spec.AssetTag != "" {
		lookups = append(lookups, engine.Lookup{Name: "asset tag", Filters: url.Values{"asset_tag": {spec.AssetTag}}})
	}
	return &engine.Plan{
		Endpoint: netbox.Devices,
		Describe: describe("device", name),
		Desired:  desired,
		Lookups:  lookups,
		Match: func(rec netbox.Record) bool {
			if spec.AssetTag != "" && rec.String("asset_tag") == spec.AssetTag {
				return true
			}
			return rec.String("name") == name && refEquals(rec, "site", site)
		},
	}, nil
}

// primaryIP resolves a primary address from an IPClaim or a literal address.
// It never fails the device: an address that is not known yet is left out.
func (m *deviceMapper) primaryIP(ctx context.Context, dev *dcopsv1alpha1.NetBoxDevice,
	ref *dcopsv1alpha1.PrimaryIPReference) (*int64, error) {
	switch {
	case ref == nil:
		return nil, nil
	case ref.IPClaimRef != nil:
		return m.ref(ctx, dev, ref.IPClaimRef, dcopsv1alpha1.KindIPClaim, engine.Soft)
	case ref.Address != "":
		recs, err := m.nb.Query(ctx, netbox.IPAddresses, url.Values{"address": {ref.Address}}, false)
		if err != nil {
			log.FromContext(ctx).Error(err, "failed to look up primary address, continuing without it", "address", ref.Address)
			return nil, nil
		}
		if len(recs) == 0 {
			log.FromContext(ctx).Info("primary address not found in NetBox, continuing without it", "address", ref.Address)
			return nil, nil
		}
		id := recs[0].ID
		return &id, nil
	}
	return nil, nil
}

type interfaceMapper struct{ planner }

func (m *interfaceMapper) Kind() string                    { return dcopsv1alpha1.KindInterface }
func (m *interfaceMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxInterface{} }

func (m *interfaceMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	iface, err := as[*dcopsv1alpha1.NetBoxInterface](obj)
	if err != nil {
		return nil, err
	}
	spec := iface.Spec
	if spec.Device == "" {
		return nil, engine.Configurationf("missing required %s reference", dcopsv1alpha1.KindDevice)
	}
	device, err := m.resolver.ResolveName(ctx, types.NamespacedName{Namespace: iface.Namespace, Name: spec.Device},
		dcopsv1alpha1.KindDevice, engine.Hard)
	if err != nil {
		return nil, err
	}

	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}
	desired := fields{
		"device":  *device,
		"name":    spec.Name,
		"type":    orDefault(spec.Type, "other"),
		"enabled": enabled,
	}
	desired.int32("mtu", spec.MTU).str("description", spec.Description)

	if spec.MACAddress != "" {
		v, err := m.version(ctx)
		if err != nil {
			return nil, err
		}
		if netbox.SupportsMACAddressObjects(v) {
			log.FromContext(ctx).V(1).Info("interface MAC addresses are separate objects on this NetBox version, use NetBoxMACAddress",
				"version", v.String())
		} else {
			desired["mac_address"] = strings.ToUpper(spec.MACAddress)
		}
	}

	return &engine.Plan{
		Endpoint: netbox.Interfaces,
		Describe: describe("interface", spec.Device+"/"+spec.Name),
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "device and name", Filters: url.Values{"device_id": {idFilter(*device)}, "name": {spec.Name}}},
		},
		Match: func(rec netbox.Record) bool {
			return rec.String("name") == spec.Name && refEquals(rec, "device", device)
		},
	}, nil
}

type macAddressMapper struct{ planner }

func (m *macAddressMapper) Kind() string                    { return dcopsv1alpha1.KindMACAddress }
func (m *macAddressMapper) New() dcopsv1alpha1.NetBoxObject { return &dcopsv1alpha1.NetBoxMACAddress{} }

func (m *macAddressMapper) Plan(ctx context.Context, obj dcopsv1alpha1.NetBoxObject) (*engine.Plan, error) {
	ma, err := as[*dcopsv1alpha1.NetBoxMACAddress](obj)
	if err != nil {
		return nil, err
	}
	spec := ma.Spec

	v, err := m.version(ctx)
	if err != nil {
		return nil, err
	}
	if !netbox.SupportsMACAddressObjects(v) {
		return nil, engine.Configurationf("NetBoxMACAddress requires NetBox 4.2 or later, server runs %s", v)
	}
	if _, err := net.ParseMAC(spec.MACAddress); err != nil {
		return nil, engine.Configurationf("invalid MAC address %q", spec.MACAddress)
	}
	mac := strings.ToUpper(spec.MACAddress)

	desired := fields{"mac_address": mac}
	desired.str("description", spec.Description).str("comments", spec.Comments)
	if spec.Interface != "" {
		ifaceID, err := m.interfaceID(ctx, ma.Namespace, spec.Interface)
		if err != nil {
			return nil, err
		}
		if ifaceID != nil {
			desired["assigned_object_type"] = "dcim.interface"
			desired["assigned_object_id"] = *ifaceID
		}
	}

	return &engine.Plan{
		Endpoint: netbox.MACAddresses,
		Describe: describe("MAC address", mac),
		Desired:  desired,
		Lookups: []engine.Lookup{
			{Name: "mac address", Filters: url.Values{"mac_address": {mac}}},
		},
		Match: func(rec netbox.Record) bool {
			return strings.EqualFold(rec.String("mac_address"), mac)
		},
	}, nil
}

// interfaceID resolves a "device/interface" reference. The device must be a
// Created NetBoxDevice; the interface is looked up in NetBox by name. Either
// missing leaves the address unassigned.
func (m *macAddressMapper) interfaceID(ctx context.Context, namespace, ref string) (*int64, error) {
	deviceName, ifaceName, ok := strings.Cut(ref, "/")
	if !ok || deviceName == "" || ifaceName == "" {
		return nil, engine.Configurationf("invalid interface %q, expected device-name/interface-name", ref)
	}
	return m.deviceInterface(ctx, namespace, deviceName, ifaceName)
}

// deviceInterface finds the NetBox interface ifaceName of the NetBoxDevice
// deviceName. A device that is not Created or an interface that does not
// exist yields nil.
func (p planner) deviceInterface(ctx context.Context, namespace, deviceName, ifaceName string) (*int64, error) {
	device, err := p.resolver.ResolveName(ctx, types.NamespacedName{Namespace: namespace, Name: deviceName},
		dcopsv1alpha1.KindDevice, engine.Soft)
	if err != nil || device == nil {
		return nil, err
	}

	recs, err := p.nb.Query(ctx, netbox.Interfaces,
		url.Values{"device_id": {idFilter(*device)}, "name": {ifaceName}}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to look up interface %s/%s: %w", deviceName, ifaceName, err)
	}
	if len(recs) == 0 {
		log.FromContext(ctx).Info("interface not found in NetBox, leaving address unassigned",
			"device", deviceName, "interface", ifaceName)
		return nil, nil
	}
	id := recs[0].ID
	return &id, nil
}
