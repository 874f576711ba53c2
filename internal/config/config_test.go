package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(public), 0o644))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(private), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigDir(t, `
addr: ":9090"
jwt_ttl: 24h
default_per_page: 20
max_per_page: 50
allowed_origins: ["http://localhost:3000"]
log_level: debug
`, `
jwt_key: test-key
pg:
  host: localhost
  port: 5432
  user: threadhub
  password: secret
  dbname: threadhub
`)

	cfg := MustLoad(dir)
	assert.Equal(t, ":9090", cfg.Public.Addr)
	assert.Equal(t, 20, cfg.Public.DefaultPerPage)
	assert.Equal(t, 50, cfg.Public.MaxPerPage)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.AllowedOrigins)
	assert.Equal(t, "test-key", cfg.Private.JwtKey)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigDir(t, "jwt_ttl: 1h\n", "jwt_key: k\n")

	cfg := MustLoad(dir)
	assert.Equal(t, ":8080", cfg.Public.Addr)
	assert.Equal(t, 10, cfg.Public.DefaultPerPage)
	assert.Equal(t, 100, cfg.Public.MaxPerPage)
}

func TestMustLoadMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
