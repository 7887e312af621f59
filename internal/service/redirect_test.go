package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techsolutions/horabank/internal/service"
	"github.com/techsolutions/horabank/models"
)

func TestDestination(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "client", role: models.RoleClient, want: "/client"},
		{name: "admin", role: models.RoleAdmin, want: "/admin"},
		{name: "developer", role: models.RoleDeveloper, want: "/developer"},
		{name: "unknown role", role: "superuser", want: "/"},
		{name: "empty role", role: "", want: "/"},
		{name: "case sensitive", role: "Admin", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Destination(tt.role))
		})
	}
}
