// Package router maps console view paths to the roles allowed to open them
// and resolves navigation through the session policy.
package router

import "github.com/inc-inventory/inventory-system/internal/core/domain"

// View paths.
const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathLogout   = "/logout"

	PathDashboard = "/dashboard"
	PathProducts  = "/products"
	PathAccount   = "/account"
	PathUsers     = "/users"

	PathEmployeeDashboard = "/employee/dashboard"
	PathEmployeeProducts  = "/employee/products"
	PathEmployeeOrders    = "/employee/orders"
	PathEmployeeAccount   = "/employee/account"
)

// Route is one view. Public routes skip authorization; otherwise Roles
// lists who may open it.
type Route struct {
	Path   string
	Title  string
	Public bool
	Roles  []domain.Role
}

var (
	staff    = []domain.Role{domain.RoleOwner, domain.RoleEmployee}
	owner    = []domain.Role{domain.RoleOwner}
	employee = []domain.Role{domain.RoleEmployee}
)

// Routes is the console's route table.
var Routes = []Route{
	{Path: PathLogin, Title: "Login", Public: true},
	{Path: PathRegister, Title: "Register", Public: true},
	{Path: PathLogout, Title: "Logout", Public: true},

	{Path: PathDashboard, Title: "Dashboard", Roles: staff},
	{Path: PathProducts, Title: "Products", Roles: staff},
	{Path: PathAccount, Title: "Account", Roles: staff},
	{Path: PathUsers, Title: "Users", Roles: owner},

	{Path: PathEmployeeDashboard, Title: "Dashboard", Roles: employee},
	{Path: PathEmployeeProducts, Title: "Products", Roles: employee},
	{Path: PathEmployeeOrders, Title: "Orders", Roles: employee},
	{Path: PathEmployeeAccount, Title: "Account", Roles: employee},
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Label string
	Path  string
}

// Menu returns the sidebar entries for role.
func Menu(role domain.Role) []MenuItem {
	switch role {
	case domain.RoleOwner:
		return []MenuItem{
			{Label: "Dashboard", Path: PathDashboard},
			{Label: "Products", Path: PathProducts},
			{Label: "Users", Path: PathUsers},
		}
	case domain.RoleEmployee:
		return []MenuItem{
			{Label: "Dashboard", Path: PathEmployeeDashboard},
			{Label: "Products", Path: PathEmployeeProducts},
			{Label: "Orders", Path: PathEmployeeOrders},
		}
	default:
		return nil
	}
}

// AccountPath returns the account view for role.
func AccountPath(role domain.Role) string {
	if role == domain.RoleEmployee {
		return PathEmployeeAccount
	}
	return PathAccount
}
