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

// Package testutils provides the fake auth API used by the widget integration tests.
package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	applicationPath  = "/api/applications/get/"
	customFieldsPath = "/api/custom-fields"
	fieldsPath       = "/api/fields"
	oauthLoginPath   = "/api/oauth-login"
	refreshTokenPath = "/api/users/refresh-token"
)

// MockAuthAPIServer serves the auth API queries the widget depends on. Only access tokens it
// issued are accepted.
type MockAuthAPIServer struct {
	server        *httptest.Server
	mutex         sync.RWMutex
	signingKey    []byte
	accessTokens  map[string]bool
	refreshTokens map[string]bool
	refreshCount  int
	queryCount    map[string]int

	Applications map[string]string
	CustomFields map[string]string
	Fields       string
	OAuthLogins  string
}

// NewMockAuthAPIServer creates a mock auth API server with empty resources.
func NewMockAuthAPIServer() *MockAuthAPIServer {
	return &MockAuthAPIServer{
		signingKey:    []byte("integration-secret"),
		accessTokens:  make(map[string]bool),
		refreshTokens: make(map[string]bool),
		queryCount:    make(map[string]int),
		Applications:  make(map[string]string),
		CustomFields:  make(map[string]string),
		Fields:        "[]",
		OAuthLogins:   "[]",
	}
}

// Start starts the mock auth API server.
func (m *MockAuthAPIServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+applicationPath+"{id}", m.authorized(func(w http.ResponseWriter, r *http.Request) {
		m.writeResource(w, m.Applications[r.PathValue("id")])
	}))
	mux.HandleFunc("GET "+customFieldsPath, m.authorized(func(w http.ResponseWriter, r *http.Request) {
		m.writeResource(w, m.CustomFields[r.URL.Query().Get("userId")])
	}))
	mux.HandleFunc("GET "+fieldsPath, m.authorized(func(w http.ResponseWriter, r *http.Request) {
		m.writeResource(w, m.Fields)
	}))
	mux.HandleFunc("GET "+oauthLoginPath, m.authorized(func(w http.ResponseWriter, r *http.Request) {
		m.writeResource(w, m.OAuthLogins)
	}))
	mux.HandleFunc("POST "+refreshTokenPath, m.handleRefresh)

	m.server = httptest.NewServer(mux)
}

// Stop stops the mock auth API server.
func (m *MockAuthAPIServer) Stop() {
	if m.server != nil {
		m.server.Close()
	}
}

// GetURL returns the base URL.
func (m *MockAuthAPIServer) GetURL() string {
	return m.server.URL
}

// IssueRefreshToken registers and returns a new refresh token.
func (m *MockAuthAPIServer) IssueRefreshToken() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token := randomToken()
	m.refreshTokens[token] = true
	return token
}

// IssueAccessToken registers and returns a new access token valid for the given duration.
func (m *MockAuthAPIServer) IssueAccessToken(validFor time.Duration) string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.issueAccessToken(validFor)
}

// RefreshCount returns the number of successful token refreshes.
func (m *MockAuthAPIServer) RefreshCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.refreshCount
}

// QueryCount returns the number of authorized requests served for the given path.
func (m *MockAuthAPIServer) QueryCount(path string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.queryCount[path]
}

func (m *MockAuthAPIServer) issueAccessToken(validFor time.Duration) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "integration-user",
		"jti": randomToken(),
		"exp": time.Now().Add(validFor).Unix(),
	}).SignedString(m.signingKey)
	if err != nil {
		panic(err)
	}
	m.accessTokens[token] = true
	return token
}

func (m *MockAuthAPIServer) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		m.mutex.Lock()
		valid := m.accessTokens[token]
		if valid {
			m.queryCount[r.URL.Path]++
		}
		m.mutex.Unlock()

		if !valid {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (m *MockAuthAPIServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.URL.Query().Get("refreshToken")

	m.mutex.Lock()
	if !m.refreshTokens[refreshToken] {
		m.mutex.Unlock()
		http.Error(w, `{"message":"invalid refresh token"}`, http.StatusUnauthorized)
		return
	}
	// Refresh tokens are single use.
	delete(m.refreshTokens, refreshToken)
	accessToken := m.issueAccessToken(time.Hour)
	m.refreshCount++
	m.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": accessToken})
}

func (m *MockAuthAPIServer) writeResource(w http.ResponseWriter, body string) {
	if body == "" {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
