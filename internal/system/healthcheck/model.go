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

package healthcheck

import "context"

// Status represents the health of the server or one of its dependencies.
type Status string

const (
	// StatusUp indicates a healthy component.
	StatusUp Status = "UP"
	// StatusDown indicates an unreachable component.
	StatusDown Status = "DOWN"
)

// ServiceStatus is the readiness of one dependency.
type ServiceStatus struct {
	ServiceName string `json:"serviceName"`
	Status      Status `json:"status"`
}

// ServerStatus is the readiness of the server and all of its dependencies.
type ServerStatus struct {
	Status        Status          `json:"status"`
	ServiceStatus []ServiceStatus `json:"serviceStatus"`
}

// Check probes a single dependency. A nil error reports it as up.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}
