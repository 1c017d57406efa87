package engine

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	dcopsv1alpha1 "github.com/microscaler/netbox-operator/api/v1alpha1"
	"github.com/microscaler/netbox-operator/internal/netbox"
	"github.com/microscaler/netbox-operator/internal/netbox/fake"
)

var _ = Describe("Sync engine with status stabilization", func() {
	var (
		ctx        context.Context
		nb         *fake.NetBox
		k8s        client.Client
		engine     *Engine
		stabilizer *Stabilizer
		key        types.NamespacedName
	)

	// reconcile runs one attempt the way the controllers do and returns the
	// freshly read object.
	reconcile := func() *dcopsv1alpha1.NetBoxSite {
		obj := &dcopsv1alpha1.NetBoxSite{}
		Expect(k8s.Get(ctx, key, obj)).To(Succeed())

		onDrift := func(ctx context.Context, msg string) error {
			_, err := stabilizer.Apply(ctx, obj, PendingStatus(msg, obj.Generation))
			return err
		}
		out, err := engine.Sync(ctx, obj.ObservedStatus(), sitePlan("DC1", "dc1"), onDrift)
		switch {
		case err != nil && IsProbe(err) && obj.ObservedStatus().State.HasRecord():
		case err != nil:
			_, patchErr := stabilizer.Apply(ctx, obj, FailedStatus(obj.ObservedStatus(), err, obj.Generation))
			Expect(patchErr).NotTo(HaveOccurred())
		default:
			_, patchErr := stabilizer.Apply(ctx, obj, CreatedStatus(out.Record, obj.Generation))
			Expect(patchErr).NotTo(HaveOccurred())
		}

		fresh := &dcopsv1alpha1.NetBoxSite{}
		Expect(k8s.Get(ctx, key, fresh)).To(Succeed())
		return fresh
	}

	BeforeEach(func() {
		ctx = context.Background()
		nb = fake.New()
		scheme := setupTestScheme(GinkgoT())
		k8s, _ = newStatusClient(scheme, site("dc1", "", nil))
		engine = New(nb)
		stabilizer = NewStabilizer(k8s, nil)
		key = types.NamespacedName{Namespace: "default", Name: "dc1"}
	})

	It("converges and then stays idle", func() {
		first := reconcile()
		Expect(first.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
		Expect(first.Status.NetBoxID).NotTo(BeNil())

		nb.ResetCalls()
		second := reconcile()

		Expect(nb.Writes()).To(BeZero())
		Expect(second.Status).To(Equal(first.Status))
		Expect(second.ResourceVersion).To(Equal(first.ResourceVersion))
	})

	It("recovers from an out-of-band deletion", func() {
		created := reconcile()
		oldID := *created.Status.NetBoxID
		nb.Delete(netbox.Sites, oldID)

		// The drift is recorded before the record is recreated.
		var sawPending bool
		obj := &dcopsv1alpha1.NetBoxSite{}
		Expect(k8s.Get(ctx, key, obj)).To(Succeed())
		_, err := engine.Sync(ctx, obj.ObservedStatus(), sitePlan("DC1", "dc1"),
			func(ctx context.Context, msg string) error {
				_, err := stabilizer.Apply(ctx, obj, PendingStatus(msg, obj.Generation))
				sawPending = obj.Status.State == dcopsv1alpha1.StatePending && obj.Status.NetBoxID == nil
				return err
			})
		Expect(err).NotTo(HaveOccurred())
		Expect(sawPending).To(BeTrue())
		Expect(*obj.Status.Error).To(Equal(DriftMessage))

		restored := reconcile()
		Expect(restored.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
		Expect(*restored.Status.NetBoxID).NotTo(Equal(oldID))
		Expect(restored.Status.Error).To(BeNil())
		Expect(nb.Len(netbox.Sites)).To(Equal(1))
	})

	It("adopts the record found after a create conflict without creating twice", func() {
		nb.BeforeCreate = func(ep netbox.Endpoint, _ map[string]any) error {
			nb.BeforeCreate = nil
			nb.Seed(ep, map[string]any{"name": "DC1", "slug": "dc1", "status": "active"})
			return nil
		}

		obj := reconcile()
		Expect(obj.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
		Expect(nb.Calls(http.MethodPost, netbox.Sites)).To(Equal(1))
		Expect(nb.Lookup(netbox.Sites, *obj.Status.NetBoxID)).NotTo(BeNil())
	})

	It("keeps the recorded status while the record cannot be checked", func() {
		created := reconcile()
		id := *created.Status.NetBoxID
		nb.GetErr = func(netbox.Endpoint, int64) error {
			return &netbox.APIError{StatusCode: http.StatusBadGateway, Method: http.MethodGet, Path: "dcim/sites"}
		}

		unchecked := reconcile()
		Expect(unchecked.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
		Expect(unchecked.Status.Error).To(BeNil())
		Expect(*unchecked.Status.NetBoxID).To(Equal(id))

		nb.GetErr = nil
		healed := reconcile()
		Expect(healed.Status.State).To(Equal(dcopsv1alpha1.StateCreated))
		Expect(*healed.Status.NetBoxID).To(Equal(id))
		Expect(nb.Calls(http.MethodPost, netbox.Sites)).To(Equal(1))
	})
})
