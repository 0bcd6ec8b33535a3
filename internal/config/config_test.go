package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8084
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[logs]
file = "logs/test.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "cw-reschedule-service"

[booking_service]
url = "http://localhost:8081"
timeout = 5
service_token = "secret"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8084, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081", cfg.BookingService.URL)
	assert.Equal(t, "secret", cfg.BookingService.ServiceToken)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		wantErr string
	}{
		{
			name: "missing port",
			mutate: `
[server]
shutdown_timeout = 15
[booking_service]
url = "http://localhost:8081"
timeout = 5
`,
			wantErr: "http_port",
		},
		{
			name: "missing booking service url",
			mutate: `
[server]
http_port = 8084
shutdown_timeout = 15
[booking_service]
timeout = 5
`,
			wantErr: "booking_service.url",
		},
		{
			name: "metrics enabled without path",
			mutate: `
[server]
http_port = 8084
shutdown_timeout = 15
[metrics]
enabled = true
[booking_service]
url = "http://localhost:8081"
timeout = 5
`,
			wantErr: "metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
