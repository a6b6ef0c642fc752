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
	"encoding/json"
	"net/http"

	"github.com/asgardeo/authwidget/internal/system/constants"
	"github.com/asgardeo/authwidget/internal/system/log"
)

// healthCheckHandler serves the liveness and readiness endpoints.
type healthCheckHandler struct {
	service HealthCheckServiceInterface
}

func newHealthCheckHandler(service HealthCheckServiceInterface) *healthCheckHandler {
	return &healthCheckHandler{
		service: service,
	}
}

// HandleLivenessRequest handles the health check liveness request.
func (h *healthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (h *healthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := h.service.CheckReadiness(r.Context())

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	if serverStatus.Status != StatusUp {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(serverStatus); err != nil {
		logger.Error("Error while writing readiness response", log.Error(err))
		return
	}
	logger.Debug("Health Check Readiness response sent", log.String("status", string(serverStatus.Status)))
}
