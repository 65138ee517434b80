package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("env: dev\n"), 0o600))

	var conf Config
	require.NoError(t, cleanenv.ReadConfig(path, &conf))

	assert.Equal(t, "dev", conf.Env)
	assert.Equal(t, "9100", conf.Listen.Port)
	assert.Equal(t, 10*time.Second, conf.Join.SubmitTimeout)
	assert.Equal(t, 2*time.Hour, conf.Join.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, conf.Hero.Fade)
	assert.False(t, conf.Telegram.Enabled)
}

func TestReadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
listen:
  bind_ip: 0.0.0.0
  port: "8080"
join:
  submit_timeout: 3s
bootcamp:
  deadline: "2026-12-01T09:00:00+09:00"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var conf Config
	require.NoError(t, cleanenv.ReadConfig(path, &conf))

	assert.Equal(t, "0.0.0.0", conf.Listen.BindIP)
	assert.Equal(t, "8080", conf.Listen.Port)
	assert.Equal(t, 3*time.Second, conf.Join.SubmitTimeout)

	deadline, err := conf.BootcampDeadline()
	require.NoError(t, err)
	assert.Equal(t, 2026, deadline.Year())
	assert.Equal(t, time.December, deadline.Month())
}

func TestBootcampDeadline(t *testing.T) {
	var conf Config
	deadline, err := conf.BootcampDeadline()
	require.NoError(t, err)
	assert.True(t, deadline.IsZero())

	conf.Bootcamp.Deadline = "next friday"
	_, err = conf.BootcampDeadline()
	assert.Error(t, err)
}
