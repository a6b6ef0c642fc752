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

import (
	"context"

	"github.com/asgardeo/authwidget/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) ServerStatus
}

// healthCheckService is the default implementation of HealthCheckServiceInterface.
type healthCheckService struct {
	checks []Check
}

// NewHealthCheckService creates a health check service running the given checks in order.
func NewHealthCheckService(checks ...Check) HealthCheckServiceInterface {
	return &healthCheckService{
		checks: checks,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (s *healthCheckService) CheckReadiness(ctx context.Context) ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	status := StatusUp
	statuses := make([]ServiceStatus, 0, len(s.checks))
	for _, check := range s.checks {
		serviceStatus := ServiceStatus{ServiceName: check.Name, Status: StatusUp}
		if err := check.Probe(ctx); err != nil {
			logger.Error("Dependency is not ready", log.String("service", check.Name), log.Error(err))
			serviceStatus.Status = StatusDown
			status = StatusDown
		}
		statuses = append(statuses, serviceStatus)
	}

	return ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}
