package service

import "github.com/techsolutions/horabank/models"

// Destination maps a role to its post-login landing path. Unknown or
// empty roles land on the public root.
func Destination(role string) string {
	switch role {
	case models.RoleClient:
		return "/client"
	case models.RoleAdmin:
		return "/admin"
	case models.RoleDeveloper:
		return "/developer"
	default:
		return "/"
	}
}
