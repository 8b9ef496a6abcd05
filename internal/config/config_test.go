package config

import (
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RIPPLE_OFFLINE_LOG_LEVEL", "")

	require.NoError(t, InitConfig())
	assert.Equal(t, filepath.Join(home, ".ripple", "secret-key.txt"), GetKeyFile())
	assert.Nil(t, GetKeyType())
	assert.Equal(t, int(log.WarnLevel), getInt(LogLevelKey))
}

func TestInitConfigFromEnv(t *testing.T) {
	t.Setenv("RIPPLE_OFFLINE_KEYFILE", "/tmp/other-key.txt")
	t.Setenv("RIPPLE_OFFLINE_KEY_TYPE", "ed25519")
	t.Setenv("RIPPLE_OFFLINE_LOG_LEVEL", "5")
	defer log.SetLevel(log.WarnLevel)

	require.NoError(t, InitConfig())
	assert.Equal(t, "/tmp/other-key.txt", GetKeyFile())
	require.NotNil(t, GetKeyType())
	assert.Equal(t, "ed25519", *GetKeyType())
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestFailingInitConfig(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"RIPPLE_OFFLINE_KEY_TYPE", "NSA special"},
		{"RIPPLE_OFFLINE_LOG_LEVEL", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			assert.Error(t, InitConfig())
		})
	}
}
