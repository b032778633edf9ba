package tiltifyclient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by LoadConfig, as in
// TILTIFY_CLIENT_ID or TILTIFY_CACHE_TYPE.
const EnvPrefix = "TILTIFY"

// LoadConfig reads client configuration from a YAML file and the environment.
// Environment variables take precedence over the file. With an empty path the
// file is looked up as ~/.tiltify/config.yml and may be absent; an explicit
// path must exist.
//
// Recognised keys: client_id, client_secret, base_url, token_url,
// http_timeout, retry_max, retry_wait_min, retry_wait_max, debug, user_agent,
// cache.type, cache.nats.url, cache.nats.bucket and cache.nats.replicas.
func LoadConfig(path string) (*tiltify.Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".tiltify"))
		}

		v.SetConfigType("yml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &tiltify.Config{
		ClientID:     v.GetString("client_id"),
		ClientSecret: v.GetString("client_secret"),
		BaseURL:      v.GetString("base_url"),
		TokenURL:     v.GetString("token_url"),
		HTTPTimeout:  v.GetDuration("http_timeout"),
		RetryMax:     v.GetInt("retry_max"),
		RetryWaitMin: v.GetDuration("retry_wait_min"),
		RetryWaitMax: v.GetDuration("retry_wait_max"),
		Debug:        v.GetBool("debug"),
		UserAgent:    v.GetString("user_agent"),
	}

	if cacheType := v.GetString("cache.type"); cacheType != "" {
		config.Cache = &tiltify.CacheConfig{Type: tiltify.CacheType(cacheType)}

		if config.Cache.Type == tiltify.CacheTypeNATS {
			config.Cache.NATS = &tiltify.NATSKVConfig{
				URL:      v.GetString("cache.nats.url"),
				Bucket:   v.GetString("cache.nats.bucket"),
				Replicas: v.GetInt("cache.nats.replicas"),
			}
		}
	}

	return config, nil
}
