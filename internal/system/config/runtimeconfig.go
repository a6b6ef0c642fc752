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
	"path"
	"sync"
)

// Runtime holds the runtime configuration of the widget server.
type Runtime struct {
	Home   string `yaml:"home"`
	Config Config `yaml:"config"`
}

var (
	runtimeConfig *Runtime
	once          sync.Once
)

// InitializeRuntime initializes the runtime configuration. Only the first call has an effect.
func InitializeRuntime(home string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &Runtime{
			Home:   home,
			Config: *config,
		}
	})

	return nil
}

// GetRuntime returns the runtime configuration.
func GetRuntime() *Runtime {
	if runtimeConfig == nil {
		panic("Runtime configuration is not initialized")
	}
	return runtimeConfig
}

// ResetRuntime resets the runtime configuration.
// This should only be used in tests to reset the singleton state.
func ResetRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}

// DeploymentFile returns the location of the deployment file under the given home directory.
func DeploymentFile(home string) string {
	return path.Join(home, deploymentFilePath)
}
