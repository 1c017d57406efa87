package labels

import "testing"

func TestNewTagBuilder(t *testing.T) {
	t.Parallel()
	slugs := NewTagBuilder().Slugs()
	if len(slugs) != 1 || slugs[0] != TagManagedBy {
		t.Fatalf("expected only %q, got %v", TagManagedBy, slugs)
	}
}

func TestWithOwner(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		owners   []string
		expected []string
	}{
		{"single owner", []string{TagOwnerIPClaim}, []string{TagManagedBy, TagOwnerIPClaim}},
		{"duplicate ignored", []string{TagOwnerIPClaim, TagOwnerIPClaim}, []string{TagManagedBy, TagOwnerIPClaim}},
		{"empty ignored", []string{""}, []string{TagManagedBy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tb := NewTagBuilder()
			for _, o := range tt.owners {
				tb.WithOwner(o)
			}
			got := tb.Slugs()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("slug %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	tb := NewTagBuilder().WithOwner(TagOwnerIPClaim)

	resolve := func(slug string) (int64, bool) {
		if slug == TagManagedBy {
			return 7, true
		}
		return 0, false
	}
	tags := tb.Build(resolve)
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if id, ok := tags[0].(int64); !ok || id != 7 {
		t.Errorf("expected existing tag by id 7, got %#v", tags[0])
	}
	ref, ok := tags[1].(map[string]any)
	if !ok || ref["slug"] != TagOwnerIPClaim {
		t.Errorf("expected missing tag by slug, got %#v", tags[1])
	}
}

func TestBuildWithoutResolver(t *testing.T) {
	t.Parallel()
	for _, tag := range NewTagBuilder().Build(nil) {
		if _, ok := tag.(map[string]any); !ok {
			t.Errorf("expected slug dictionary, got %#v", tag)
		}
	}
}

func TestSlugsIsCopy(t *testing.T) {
	t.Parallel()
	tb := NewTagBuilder()
	s := tb.Slugs()
	s[0] = "changed"
	if tb.Slugs()[0] != TagManagedBy {
		t.Error("Slugs must return a copy")
	}
}
