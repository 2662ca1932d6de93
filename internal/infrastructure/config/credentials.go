package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Credentials is a read-only secrets store. Values come from a YAML file
// kept out of version control, overridable through CRAGBASE_CREDENTIALS_*
// environment variables.
type Credentials struct {
	v *viper.Viper
}

// LoadCredentials reads the secrets file at path. A missing file yields an
// empty store so that every lookup returns nil.
func LoadCredentials(path string) (*Credentials, error) {
	v := newCredentialsViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	}

	return &Credentials{v: v}, nil
}

// NewCredentials builds a store from an in-memory map.
func NewCredentials(values map[string]any) (*Credentials, error) {
	v := newCredentialsViper()
	if err := v.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	return &Credentials{v: v}, nil
}

func newCredentialsViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CRAGBASE_CREDENTIALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Dig returns the value nested under path, or nil when any segment is absent.
func (c *Credentials) Dig(path ...string) any {
	if c == nil || c.v == nil || len(path) == 0 {
		return nil
	}
	return c.v.Get(strings.Join(path, "."))
}
