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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/asgardeo/authwidget/internal/system/constants"
	"github.com/asgardeo/authwidget/internal/system/error/serviceerror"
	"github.com/asgardeo/authwidget/internal/system/log"
)

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int, respHeaders []map[string]string) {
	logger := log.GetLogger()
	logger.Error("Error in HTTP response", log.String("error", code), log.String("description", desc))

	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": desc,
	})
	if err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
	}
}

// WriteServiceError writes a service error as a JSON response, picking the status from the error type.
func WriteServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}
	WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, statusCode, nil)
}

// AcceptsJSON reports whether the request prefers a JSON response over HTML.
func AcceptsJSON(r *http.Request) bool {
	accept := r.Header.Get(constants.AcceptHeaderName)
	return strings.Contains(accept, constants.ContentTypeJSON) && !strings.Contains(accept, "text/html")
}
