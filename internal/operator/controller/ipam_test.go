package controller

import (
	"net/http"
	"net/netip"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
	"github.com/microscaler/netbox-operator/internal/util/labels"
)

var _ = Describe("IP pools and claims", func() {
	var (
		nb       *fake.NetBox
		env      *testEnv
		prefixID int64
		pools    *Reconciler
		claims   *Reconciler
	)

	newPool := func(strategy dcopsv1alpha1.AllocationStrategy) *dcopsv1alpha1.IPPool {
		return &dcopsv1alpha1.IPPool{
			ObjectMeta: objectMeta("pool"),
			Spec: dcopsv1alpha1.IPPoolSpec{
				NetBoxPrefixRef:    dcopsv1alpha1.ResourceReference{Kind: dcopsv1alpha1.KindPrefix, Name: strconv.FormatInt(prefixID, 10)},
				AllocationStrategy: strategy,
			},
		}
	}
	newClaim := func(name, preferred string) *dcopsv1alpha1.IPClaim {
		return &dcopsv1alpha1.IPClaim{
			ObjectMeta: objectMeta(name),
			Spec: dcopsv1alpha1.IPClaimSpec{
				PoolRef:     dcopsv1alpha1.IPPoolRef{Name: "pool"},
				PreferredIP: preferred,
			},
		}
	}
	// start builds the environment around the seeded prefix and reconciles
	// the pool so claims can resolve it.
	start := func(objs ...client.Object) {
		env = newTestEnv(GinkgoT(), nb, objs...)
		pools = env.reconciler(dcopsv1alpha1.KindIPPool)
		claims = env.reconciler(dcopsv1alpha1.KindIPClaim)
		env.reconcile(GinkgoT(), pools, "pool")
	}
	pool := func() *dcopsv1alpha1.IPPool {
		p := &dcopsv1alpha1.IPPool{}
		env.get(GinkgoT(), "pool", p)
		return p
	}
	claim := func(name string) *dcopsv1alpha1.IPClaim {
		c := &dcopsv1alpha1.IPClaim{}
		env.get(GinkgoT(), name, c)
		return c
	}

	BeforeEach(func() {
		nb = fake.New()
		prefixID = nb.Seed(netbox.Prefixes, map[string]any{"prefix": "10.0.0.0/29", "status": "active"})
	})

	Describe("IPPool", func() {
		It("reports the prefix and its address usage", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential))

			p := pool()
			Expect(p.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
			Expect(p.Status.NetBoxPrefixID).To(Equal(ptr.To(prefixID)))
			Expect(p.Status.TotalIPs).To(Equal(int64(6)))
			Expect(p.Status.AllocatedIPs).To(BeZero())
			Expect(p.Status.AvailableIPs).To(Equal(int64(6)))
			Expect(nb.Writes()).To(BeZero())
		})

		It("counts allocated addresses on the next pass", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")
			env.reconcile(GinkgoT(), pools, "pool")

			p := pool()
			Expect(p.Status.TotalIPs).To(Equal(int64(6)))
			Expect(p.Status.AllocatedIPs).To(Equal(int64(1)))
			Expect(p.Status.AvailableIPs).To(Equal(int64(5)))
		})

		It("fails terminally when the prefix is gone", func() {
			nb.Delete(netbox.Prefixes, prefixID)
			start(newPool(dcopsv1alpha1.AllocationSequential))

			p := pool()
			Expect(p.Status.State).To(Equal(dcopsv1alpha1.StateFailed))
			Expect(p.Status.Error).To(HaveValue(ContainSubstring("not found in NetBox")))

			nb.ResetCalls()
			env.reconcile(GinkgoT(), pools, "pool")
			Expect(nb.Calls("LIST", netbox.Prefixes)).To(BeZero(), "terminal failures are not retried")
		})
	})

	Describe("IPClaim", func() {
		It("allocates the next free address", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""), newClaim("b", ""))

			env.reconcile(GinkgoT(), claims, "a")
			env.reconcile(GinkgoT(), claims, "b")

			a, b := claim("a"), claim("b")
			Expect(a.Status.State).To(Equal(dcopsv1alpha1.ClaimAllocated))
			Expect(a.Status.IP).To(HaveValue(Equal("10.0.0.1/29")))
			Expect(b.Status.IP).To(HaveValue(Equal("10.0.0.2/29")))
			Expect(a.Status.NetBoxIPRef).To(HaveValue(HavePrefix(fake.BaseURL + "/api/ipam/ip-addresses/")))
			Expect(a.Status.Error).To(BeNil())
		})

		It("marks the address with the claim and owner tags", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")

			id, ok := dcopsv1alpha1.IDFromURL(*claim("a").Status.NetBoxIPRef)
			Expect(ok).To(BeTrue())
			rec := nb.Lookup(netbox.IPAddresses, id)
			Expect(rec.String("description")).To(Equal("IPClaim: default/a"))
			Expect(rec.Choice("status")).To(Equal("active"))
			Expect(rec.Fields["tags"]).To(ConsistOf(
				HaveKeyWithValue("slug", labels.TagManagedBy),
				HaveKeyWithValue("slug", labels.TagOwnerIPClaim),
			))
		})

		It("references existing tags by id", func() {
			tagID := nb.Seed(netbox.Tags, map[string]any{"name": labels.TagManagedBy, "slug": labels.TagManagedBy})
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")

			id, _ := dcopsv1alpha1.IDFromURL(*claim("a").Status.NetBoxIPRef)
			Expect(nb.Lookup(netbox.IPAddresses, id).Fields["tags"]).To(ContainElement(
				HaveKeyWithValue("id", BeNumerically("==", tagID)),
			))
		})

		It("is stable once allocated", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")
			nb.ResetCalls()

			env.reconcile(GinkgoT(), claims, "a")

			Expect(nb.Writes()).To(BeZero())
			Expect(nb.Calls(http.MethodPost, netbox.Prefixes+"/available-ips")).To(BeZero())
			Expect(claim("a").Status.IP).To(HaveValue(Equal("10.0.0.1/29")))
		})

		It("takes the preferred address with the prefix length", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", "10.0.0.5"))
			env.reconcile(GinkgoT(), claims, "a")

			Expect(claim("a").Status.IP).To(HaveValue(Equal("10.0.0.5/29")))
			Expect(nb.Calls(http.MethodPost, netbox.Prefixes+"/available-ips")).To(BeZero())
		})

		It("rejects a preferred address outside the prefix", func() {
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", "10.0.1.5/29"))
			env.reconcile(GinkgoT(), claims, "a")

			c := claim("a")
			Expect(c.Status.State).To(Equal(dcopsv1alpha1.ClaimFailed))
			Expect(c.Status.Error).To(HaveValue(Equal("preferred IP 10.0.1.5 is outside prefix 10.0.0.0/29")))
			Expect(nb.Len(netbox.IPAddresses)).To(BeZero())
		})

		It("picks a free address at random", func() {
			nb.Seed(netbox.IPAddresses, map[string]any{"address": "10.0.0.1/29"})
			start(newPool(dcopsv1alpha1.AllocationRandom), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")

			ip := claim("a").Status.IP
			Expect(ip).NotTo(BeNil())
			addr, err := netip.ParsePrefix(*ip)
			Expect(err).NotTo(HaveOccurred())
			Expect(netip.MustParsePrefix("10.0.0.0/29").Contains(addr.Addr())).To(BeTrue())
			Expect(*ip).NotTo(Equal("10.0.0.1/29"))
			Expect(nb.Calls(http.MethodPost, netbox.IPAddresses)).To(Equal(1))
		})

		It("finds its address again after losing its status", func() {
			existing := nb.Seed(netbox.IPAddresses, map[string]any{
				"address":     "10.0.0.4/29",
				"description": "IPClaim: default/a",
				"status":      "active",
			})
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))
			env.reconcile(GinkgoT(), claims, "a")

			id, _ := dcopsv1alpha1.IDFromURL(*claim("a").Status.NetBoxIPRef)
			Expect(id).To(Equal(existing))
			Expect(claim("a").Status.IP).To(HaveValue(Equal("10.0.0.4/29")))
			Expect(nb.Calls(http.MethodPost, netbox.Prefixes+"/available-ips")).To(BeZero())
		})

		It("assigns the address to the device interface", func() {
			ifaceID := nb.Seed(netbox.Interfaces, map[string]any{"device": 7, "name": "eth0"})
			c := newClaim("a", "")
			c.Spec.DeviceRef = dcopsv1alpha1.DeviceRef{Name: "node1", Interface: "eth0"}
			start(newPool(dcopsv1alpha1.AllocationSequential), c, createdDevice("node1", 7))
			env.reconcile(GinkgoT(), claims, "a")

			id, _ := dcopsv1alpha1.IDFromURL(*claim("a").Status.NetBoxIPRef)
			rec := nb.Lookup(netbox.IPAddresses, id)
			Expect(rec.String("assigned_object_type")).To(Equal("dcim.interface"))
			Expect(rec.Fields["assigned_object_id"]).To(BeNumerically("==", ifaceID))
		})

		It("waits for its pool", func() {
			nb.Delete(netbox.Prefixes, prefixID)
			start(newPool(dcopsv1alpha1.AllocationSequential), newClaim("a", ""))

			res := env.reconcile(GinkgoT(), claims, "a")

			Expect(res.RequeueAfter).To(Equal(defaultRequeueAfter))
			c := claim("a")
			Expect(c.Status.State).To(Equal(dcopsv1alpha1.ClaimFailed))
			Expect(c.Status.Error).To(HaveValue(Equal("IPPool default/pool is not ready (state Failed)")))
		})
	})
})
