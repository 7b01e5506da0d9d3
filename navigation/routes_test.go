package navigation

import (
	"testing"

	"medistore/models"
)

func TestRoutesForRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleSeller, models.RoleUser} {
		groups := RoutesForRole(role)
		if len(groups) == 0 {
			t.Fatalf("RoutesForRole(%s) returned no groups", role)
		}
		for _, g := range groups {
			if len(g.Items) == 0 {
				t.Errorf("RoutesForRole(%s): group %q has no items", role, g.Title)
			}
			for _, item := range g.Items {
				if item.Title == "" || item.URL == "" {
					t.Errorf("RoutesForRole(%s): incomplete item %+v", role, item)
				}
			}
		}
	}
}

func TestRoutesForUnknownRole(t *testing.T) {
	if groups := RoutesForRole(models.Role("SUPPORT")); groups != nil {
		t.Errorf("unknown role should get an empty sidebar, got %d groups", len(groups))
	}
}

func TestAdminSidebarTargets(t *testing.T) {
	want := map[string]bool{
		"/admin-dashboard":          false,
		"/admin-dashboard/users":    false,
		"/admin-dashboard/products": false,
		"/admin-dashboard/orders":   false,
		"/admin-dashboard/ads":      false,
	}
	for _, g := range RoutesForRole(models.RoleAdmin) {
		for _, item := range g.Items {
			if _, ok := want[item.URL]; ok {
				want[item.URL] = true
			}
		}
	}
	for url, seen := range want {
		if !seen {
			t.Errorf("admin sidebar is missing %s", url)
		}
	}
}
