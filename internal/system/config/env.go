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

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvOverrides holds the values that may be supplied through the environment.
type EnvOverrides struct {
	ApplicationID  string `env:"APPLICATION_PUBLISHABLE_KEY"`
	UserID         string `env:"E2SAUTH_SECRET_KEY"`
	AuthAPIBaseURL string `env:"AUTH_API_BASE_URL"`
	RedisAddress   string `env:"REDIS_ADDRESS"`
}

// LoadDotEnv loads the given .env files into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseEnv reads the environment overrides.
func ParseEnv() (EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return overrides, fmt.Errorf("parse env: %w", err)
	}
	return overrides, nil
}

// ApplyEnv overrides the configuration with every non-empty environment value.
func (c *Config) ApplyEnv(overrides EnvOverrides) {
	if overrides.ApplicationID != "" {
		c.Widget.ApplicationID = overrides.ApplicationID
	}
	if overrides.UserID != "" {
		c.Widget.UserID = overrides.UserID
	}
	if overrides.AuthAPIBaseURL != "" {
		c.AuthAPI.BaseURL = overrides.AuthAPIBaseURL
	}
	if overrides.RedisAddress != "" {
		c.Session.Redis.Address = overrides.RedisAddress
	}
}
