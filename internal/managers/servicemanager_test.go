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

package managers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/log"
	"github.com/asgardeo/authwidget/tests/mocks/sessionmock"
)

type ServiceManagerTestSuite struct {
	suite.Suite
	stores   *sessionmock.StoreFactoryInterfaceMock
	recorded *observer.ObservedLogs
	manager  ServiceManagerInterface
}

func TestServiceManagerSuite(t *testing.T) {
	suite.Run(t, new(ServiceManagerTestSuite))
}

func (suite *ServiceManagerTestSuite) SetupTest() {
	core, recorded := observer.New(zapcore.InfoLevel)
	suite.recorded = recorded
	suite.stores = sessionmock.NewStoreFactoryInterfaceMock(suite.T())

	cfg := &config.Config{
		AuthAPI: config.AuthAPIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 1},
		Widget:  config.WidgetConfig{ApplicationID: "app-1", UserID: "42"},
	}
	suite.manager = NewServiceManager(cfg, suite.stores, log.NewLogger(zap.New(core)))
	suite.Require().NoError(suite.manager.RegisterServices())
}

func (suite *ServiceManagerTestSuite) TestRegisteredRoutes() {
	routes := map[string]bool{}
	err := chi.Walk(suite.manager.Handler().(chi.Routes), func(method, route string,
		_ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	})
	suite.Require().NoError(err)

	for _, expected := range []string{
		"GET /health/liveness",
		"GET /health/readiness",
		"GET /widget",
		"POST /widget",
		"OPTIONS /widget",
		"GET /widget/config",
	} {
		suite.True(routes[expected], expected)
	}
}

func (suite *ServiceManagerTestSuite) TestReadinessUsesTokenStore() {
	suite.stores.On("Ping", mock.Anything).Return(errors.New("redis: connection refused")).Once()

	rec := httptest.NewRecorder()
	suite.manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
	suite.Contains(rec.Body.String(), `"serviceName":"TokenStore"`)
}

func (suite *ServiceManagerTestSuite) TestAccessLogAndRequestID() {
	rec := httptest.NewRecorder()
	suite.manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

	suite.Equal(http.StatusOK, rec.Code)
	entries := suite.recorded.FilterMessageSnippet("GET /health/liveness").All()
	suite.Require().Len(entries, 1)
	suite.NotEmpty(entries[0].ContextMap()[log.LoggerKeyRequestID])
}

func (suite *ServiceManagerTestSuite) TestRecoversFromPanics() {
	router := suite.manager.Handler().(chi.Router)
	router.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	suite.NotPanics(func() {
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func (suite *ServiceManagerTestSuite) TestWidgetConfigCompressed() {
	suite.stores.On("StoreFor", mock.Anything, mock.Anything).Return(session.NewMemoryStore(nil)).Once()

	req := httptest.NewRequest(http.MethodGet, "/widget/config", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	suite.manager.Handler().ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.True(strings.Contains(rec.Header().Get("Content-Type"), "application/json"))
	suite.Equal("br", rec.Header().Get("Content-Encoding"))
}
