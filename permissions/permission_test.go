package permissions_test

import (
	"testing"

	"hotelier/permissions"
	"hotelier/shared/constant"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		action   permissions.Action
		expected bool
	}{
		{
			name:     "admin can manage staff",
			role:     constant.RoleAdmin,
			action:   permissions.ManageStaff,
			expected: true,
		},
		{
			name:     "manager can view the admin panel",
			role:     constant.RoleManager,
			action:   permissions.ViewAdminPanel,
			expected: true,
		},
		{
			name:     "receptionist can manage bookings",
			role:     constant.RoleReceptionist,
			action:   permissions.ManageBookings,
			expected: true,
		},
		{
			name:     "receptionist cannot manage staff",
			role:     constant.RoleReceptionist,
			action:   permissions.ManageStaff,
			expected: false,
		},
		{
			name:     "housekeeping can change room status",
			role:     constant.RoleHousekeeping,
			action:   permissions.ChangeRoomStatus,
			expected: true,
		},
		{
			name:     "housekeeping cannot manage bookings",
			role:     constant.RoleHousekeeping,
			action:   permissions.ManageBookings,
			expected: false,
		},
		{
			name:     "maintenance holds nothing",
			role:     constant.RoleMaintenance,
			action:   permissions.ViewRooms,
			expected: false,
		},
		{
			name:     "unknown role holds nothing",
			role:     "bellhop",
			action:   permissions.ViewGuests,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := permissions.Allowed(tt.role, tt.action); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestAdminHoldsEveryAction(t *testing.T) {
	for _, action := range permissions.Actions(constant.RoleAdmin) {
		if !permissions.Allowed(constant.RoleAdmin, action) {
			t.Errorf("expected admin to hold %s", action)
		}
	}

	if len(permissions.Actions(constant.RoleAdmin)) == 0 {
		t.Error("expected admin to hold at least one action")
	}
}

func TestGet(t *testing.T) {
	data := permissions.Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	if len(data.Endpoints) == 0 {
		t.Fatal("expected at least one endpoint entry")
	}
}

func TestFindPermission(t *testing.T) {
	data := permissions.Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	t.Run("mapped endpoint carries its action", func(t *testing.T) {
		permission := data.FindPermission("/v1/bookings", "POST")

		if permission.Action != permissions.ManageBookings {
			t.Errorf("expected %s, got %s", permissions.ManageBookings, permission.Action)
		}
	})

	t.Run("public endpoint is skipped", func(t *testing.T) {
		permission := data.FindPermission("/v1/auth/login", "POST")

		if !permission.Skip {
			t.Error("expected login to be skipped")
		}
	})

	t.Run("unmapped endpoint returns zero permission", func(t *testing.T) {
		permission := data.FindPermission("/v1/unknown", "GET")

		if permission.Action != "" || permission.Skip {
			t.Errorf("expected zero permission, got %+v", permission)
		}
	})
}
