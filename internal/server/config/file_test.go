package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "json",
			file: "server.json",
			body: `{"endpoint_addr_grpc":":6000","secret_key":"k","access_token_validity_duration":"5m","s3_bucket":"exports"}`,
		},
		{
			name: "yaml",
			file: "server.yaml",
			body: "endpoint_addr_grpc: \":6000\"\nsecret_key: k\naccess_token_validity_duration: 5m\ns3_bucket: exports\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.file, tt.body)

			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = []string{"cmd", "-c", path}

			c := &Config{}
			c.LoadDefaults()
			require.NotPanics(t, func() { parseFile(c) })

			assert.Equal(t, ":6000", c.EndpointAddrGRPC)
			assert.Equal(t, "k", c.SecretKey)
			assert.Equal(t, 5*time.Minute, c.AccessTokenValidityDuration)
			assert.Equal(t, "exports", c.S3Bucket)
			// untouched fields keep their defaults
			assert.Equal(t, "admin", c.AdminPassword)
			assert.Equal(t, 15*time.Minute, c.ExportLinkValidityDuration)
		})
	}
}

func TestParseFile_NoFlag(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	c := &Config{}
	c.LoadDefaults()
	require.NotPanics(t, func() { parseFile(c) })
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
}

func TestParseFile_Errors(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd", "-config", filepath.Join(t.TempDir(), "missing.json")}
	require.Panics(t, func() { parseFile(&Config{}) })

	path := writeConfigFile(t, "broken.json", "{not json")
	os.Args = []string{"cmd", "-config", path}
	require.Panics(t, func() { parseFile(&Config{}) })
}
