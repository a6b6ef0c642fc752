/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// SecurityConfig holds the TLS configuration details. TLS is disabled when either file is empty.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// AuthAPIConfig holds the details of the remote auth API the widget is configured from.
type AuthAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout is the outbound request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// WidgetConfig selects the application and owner whose configuration is rendered.
type WidgetConfig struct {
	ApplicationID string `yaml:"application_id"`
	UserID        string `yaml:"user_id"`
}

// CookieConfig holds the attributes of the token cookies.
type CookieConfig struct {
	Domain string `yaml:"domain"`
	Path   string `yaml:"path"`
	Secure bool   `yaml:"secure"`
	// MaxAge is the cookie lifetime in seconds. Zero keeps session cookies.
	MaxAge int `yaml:"max_age"`
}

// RedisConfig holds the redis token store connection details.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
	// TTL is the token entry lifetime in seconds. Zero keeps entries until overwritten.
	TTL int `yaml:"ttl"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// SessionConfig holds the token storage configuration.
type SessionConfig struct {
	// Store is one of cookie, memory, redis or database.
	Store     string       `yaml:"store"`
	Namespace string       `yaml:"namespace"`
	Cookie    CookieConfig `yaml:"cookie"`
	Redis     RedisConfig  `yaml:"redis"`
	Database  DataSource   `yaml:"database"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// TracingConfig holds the OpenTelemetry tracing configuration.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	AuthAPI  AuthAPIConfig  `yaml:"auth_api"`
	Widget   WidgetConfig   `yaml:"widget"`
	Session  SessionConfig  `yaml:"session"`
	CORS     CORSConfig     `yaml:"cors"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills the values a deployment file may leave out.
func (c *Config) applyDefaults() {
	if c.Server.Hostname == "" {
		c.Server.Hostname = defaultHostname
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.AuthAPI.BaseURL == "" {
		c.AuthAPI.BaseURL = defaultAuthAPIBaseURL
	}
	if c.AuthAPI.Timeout <= 0 {
		c.AuthAPI.Timeout = defaultAuthAPITimeout
	}
	if c.Session.Store == "" {
		c.Session.Store = SessionStoreCookie
	}
	if c.Session.Namespace == "" {
		c.Session.Namespace = defaultSessionNamespace
	}
	if c.Session.Cookie.Path == "" {
		c.Session.Cookie.Path = "/"
	}
	if c.Session.Redis.KeyPrefix == "" {
		c.Session.Redis.KeyPrefix = defaultRedisKeyPrefix
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = defaultServiceName
	}
}

// TLSEnabled reports whether both the certificate and the key are configured.
func (c *Config) TLSEnabled() bool {
	return c.Security.CertFile != "" && c.Security.KeyFile != ""
}

// WriteTimeout returns the server write timeout, long enough for a token refresh followed by a query.
func (c *Config) WriteTimeout() time.Duration {
	return 2*time.Duration(c.AuthAPI.Timeout)*time.Second + writeTimeoutMargin
}
