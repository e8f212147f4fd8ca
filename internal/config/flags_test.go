package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"serve",
				"--lb-address", "http://lb:10001",
				"--request-timeout", "3s",
				"--listen", "127.0.0.1:8080",
				"--server-timeout", "20s",
				"--refresh", "10s",
				"--log-level", "debug",
				"--config", "/path/to/config.yaml",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, CommandServe, cfg.Command)
				assert.Equal(t, "http://lb:10001", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/path/to/config.yaml", cfg.JSONFilePath)
			},
		},
		{
			name: "short flags",
			args: []string{"-a", "lb:1", "-l", "localhost:9000", "-c", "cfg.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "lb:1", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name: "dump with format",
			args: []string{"dump", "-o", "yaml"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, CommandDump, cfg.Command)
				assert.Equal(t, FormatYAML, cfg.Report.Format)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, CommandTUI, cfg.Command)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Empty(t, cfg.Report.Format)
				assert.Zero(t, cfg.Workers.RefreshInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests ParseFlags with malformed input
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid listen address", args: []string{"serve", "--listen", "invalid"}},
		{name: "invalid duration", args: []string{"--request-timeout", "soon"}},
		{name: "unknown format", args: []string{"dump", "--format", "xml"}},
		{name: "unknown command", args: []string{"restart"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
