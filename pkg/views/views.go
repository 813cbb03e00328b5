package views

import "github.com/chris/gateway-dashboard/pkg/models"

// View identifies the screen a client should render.
type View string

const (
	Landing             View = "landing"
	UserDashboard       View = "user_dashboard"
	AdminDashboard      View = "admin_dashboard"
	SuperAdminDashboard View = "super_admin_dashboard"
)

// DefaultView is served to signed-in users whose role is not recognised.
const DefaultView = UserDashboard

// Route picks the view for the current session. A nil user means Anonymous.
func Route(user *models.User) View {
	if user == nil {
		return Landing
	}
	switch user.Role {
	case models.RoleUser:
		return UserDashboard
	case models.RoleAdmin:
		return AdminDashboard
	case models.RoleSuperAdmin:
		return SuperAdminDashboard
	default:
		return DefaultView
	}
}
