package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:5000"))

	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 5000, a.Port)
	assert.Equal(t, "localhost:5000", a.String())
}

func TestNetAddress_SetIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:9090"))

	assert.Equal(t, "127.0.0.1", a.Host)
	assert.Equal(t, 9090, a.Port)
}

func TestNetAddress_SetInvalid(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:abc"},
		{"zero port", "localhost:0"},
		{"bad host", "not-an-ip:8080"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tc.value))
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
