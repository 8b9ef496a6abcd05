package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

const (
	// KeyFileKey is the path of the key file used when --keyfile is not given
	KeyFileKey = "KEYFILE"
	// KeyTypeKey is the key type used by createkeyfile when --keytype is not given
	KeyTypeKey = "KEY_TYPE"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"

	envPrefix = "RIPPLE_OFFLINE"
)

var vip *viper.Viper

// InitConfig reads the configuration from RIPPLE_OFFLINE_* environment
// variables and validates it.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.AutomaticEnv()

	vip.SetDefault(KeyFileKey, DefaultKeyFile())
	vip.SetDefault(LogLevelKey, int(log.WarnLevel))

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	log.SetLevel(log.Level(getInt(LogLevelKey)))
	return nil
}

func getString(key string) string {
	return vip.GetString(key)
}

func getInt(key string) int {
	return vip.GetInt(key)
}

func isSet(key string) bool {
	return vip.IsSet(key)
}

// GetKeyFile returns the configured key file path.
func GetKeyFile() string {
	return getString(KeyFileKey)
}

// GetKeyType returns the configured key type, or nil when none is set.
func GetKeyType() *string {
	if !isSet(KeyTypeKey) {
		return nil
	}
	kt := getString(KeyTypeKey)
	return &kt
}

// DefaultKeyFile is .ripple/secret-key.txt under the home directory, or
// under the current directory when HOME is not set.
func DefaultKeyFile() string {
	base := os.Getenv("HOME")
	if base == "" {
		if cwd, err := os.Getwd(); err == nil {
			base = cwd
		}
	}
	return filepath.Join(base, ".ripple", "secret-key.txt")
}

func validate() error {
	if len(GetKeyFile()) <= 0 {
		return fmt.Errorf("%s must not be empty", KeyFileKey)
	}

	if kt := GetKeyType(); kt != nil {
		if _, err := keys.ParseKeyType(*kt); err != nil {
			return err
		}
	}

	level := getInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [%d, %d]", LogLevelKey, log.PanicLevel, log.TraceLevel)
	}

	return nil
}
