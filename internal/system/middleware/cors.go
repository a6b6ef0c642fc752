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

// Package middleware provides HTTP middleware functions for request processing.
package middleware

import (
	"net/http"

	"github.com/asgardeo/authwidget/internal/system/utils"
)

// CORSOptions represents the CORS configuration for HTTP requests.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// WithCORS returns a middleware that applies CORS headers and answers preflight requests.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			applyCORSHeaders(w, r, opts)
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// applyCORSHeaders sets the CORS headers for the response based on the configured allowed origins.
func applyCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	requestOrigin := r.Header.Get("Origin")
	if requestOrigin == "" {
		return
	}

	allowedOrigin := utils.GetAllowedOrigin(opts.AllowedOrigins, requestOrigin)
	if allowedOrigin == "" {
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
	w.Header().Add("Vary", "Origin")
	if opts.AllowedMethods != "" {
		w.Header().Set("Access-Control-Allow-Methods", opts.AllowedMethods)
	}
	if opts.AllowedHeaders != "" {
		w.Header().Set("Access-Control-Allow-Headers", opts.AllowedHeaders)
	}
	if opts.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}
