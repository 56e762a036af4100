// Package permissions is the single source of truth for what a staff role may
// do. The role matrix is pure and side-effect free; the embedded endpoint map
// binds HTTP routes to the action they require so middleware can enforce the
// matrix centrally.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"

	"hotelier/shared/constant"
)

//go:embed permissions.json
var permissionsData []byte

// Action is a capability a role may hold.
type Action string

const (
	ViewGuests       Action = "view-guests"
	ManageGuests     Action = "manage-guests"
	ViewRooms        Action = "view-rooms"
	ManageRooms      Action = "manage-rooms"
	ChangeRoomStatus Action = "change-room-status"
	ViewBookings     Action = "view-bookings"
	ManageBookings   Action = "manage-bookings"
	ViewStaff        Action = "view-staff"
	ManageStaff      Action = "manage-staff"
	ViewAdminPanel   Action = "view-admin-panel"
)

var allActions = []Action{
	ViewGuests, ManageGuests,
	ViewRooms, ManageRooms, ChangeRoomStatus,
	ViewBookings, ManageBookings,
	ViewStaff, ManageStaff,
	ViewAdminPanel,
}

var roleActions = map[string][]Action{
	constant.RoleAdmin:   allActions,
	constant.RoleManager: allActions,
	constant.RoleReceptionist: {
		ViewGuests, ManageGuests,
		ViewBookings, ManageBookings,
		ViewRooms, ChangeRoomStatus,
	},
	constant.RoleHousekeeping: {
		ViewRooms, ChangeRoomStatus,
	},
	constant.RoleMaintenance: {},
	constant.RoleSecurity:    {},
}

// Allowed reports whether the role holds the action. Unknown roles hold
// nothing.
func Allowed(role string, action Action) bool {
	actions, ok := roleActions[role]
	if !ok {
		return false
	}

	return slices.Contains(actions, action)
}

// Actions returns every action the role holds.
func Actions(role string) []Action {
	return slices.Clone(roleActions[role])
}

type Permission struct {
	Action Action `json:"action"`
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
}

// FindPermission returns the endpoint entry for the routing pattern, or a zero
// Permission when the endpoint carries no action requirement.
func (r *PermissionData) FindPermission(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
