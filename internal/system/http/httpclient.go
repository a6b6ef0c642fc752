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

// Package http provides the outbound HTTP client used to reach the remote auth API.
package http

import (
	"net/http"
	"time"
)

// DefaultTimeout is applied when no positive timeout is configured.
const DefaultTimeout = 10 * time.Second

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient implements HTTPClientInterface on top of a standard http.Client.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTPClient with the given timeout.
func NewHTTPClient(timeout time.Duration) HTTPClientInterface {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPClientWithConfig wraps a preconfigured http.Client, for example one returned by httptest.Server.
func NewHTTPClientWithConfig(client *http.Client) HTTPClientInterface {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPClient{
		client: client,
	}
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
