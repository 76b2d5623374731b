package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Production with default JWT secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production with short JWT secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production with default DB password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production with dev root bootstrap enabled", func(c *Config) {
			c.Env = "production"
			c.DevBootstrapRoot = true
		}, true},
		{"Production fully hardened", func(c *Config) { c.Env = "production" }, false},
		{"Prod alias fully hardened", func(c *Config) { c.Env = "prod" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        "development",
				Port:       "8460",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				DBSSLMode:  "require",
				RedisURL:   "localhost:6379",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8460", c.Port)
	assert.Equal(t, "atrium", c.DBName)
	assert.Equal(t, "test", c.Env)
	assert.False(t, c.DevBootstrapRoot)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")
	os.Setenv("PORT", "9999")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9999", c.Port)
}
