package models

// Role values reported by the API. Anything else is treated as unknown
// and routed to the root page after login.
const (
	RoleClient    = "client"
	RoleDeveloper = "developer"
	RoleAdmin     = "admin"
)

// User is the authenticated account mirrored locally after a successful
// login, register, or profile update. It is owned exclusively by the
// session store; the user-directory projection fetched by the domain
// store is a separate type ([DirectoryUser]).
type User struct {
	// ID is the server-assigned identifier of the account.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Role is one of client, developer, or admin. The role is immutable
	// after account creation as far as this client is concerned.
	Role string `json:"role"`

	// HourBank holds the purchased-hours plan for client accounts.
	// Developer accounts carry no hour bank and the field is omitted.
	HourBank *HourPlan `json:"hourBank,omitempty"`

	// Skills lists developer skills; empty for clients and admins.
	Skills []string `json:"skills,omitempty"`
}

// DirectoryUser is the read-only user projection returned by the user
// directory endpoint. It is owned by the domain store and never shares
// mutation with the session store's [User].
type DirectoryUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HourPlan is the purchased-hours bundle attached to a client account
// at registration time.
type HourPlan struct {
	Total int    `json:"total"`
	Used  int    `json:"used"`
	Plan  string `json:"plan"`
}

// Hour plans sold by TechSolutions and the hours each one grants.
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// PlanHours maps a plan name to its purchased hours. Unknown plans fall
// back to the basic allowance.
func PlanHours(plan string) int {
	switch plan {
	case PlanStandard:
		return 40
	case PlanPremium:
		return 80
	default:
		return 20
	}
}
