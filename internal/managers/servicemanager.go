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

// Package managers wires the HTTP services of the widget server.
package managers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/healthcheck"
	"github.com/asgardeo/authwidget/internal/system/log"
	"github.com/asgardeo/authwidget/internal/system/middleware"
	"github.com/asgardeo/authwidget/internal/widget"
)

const compressionLevel = 5

// ServiceManagerInterface registers the services on the server router.
type ServiceManagerInterface interface {
	RegisterServices() error
	Handler() http.Handler
}

// ServiceManager is the default implementation of ServiceManagerInterface.
type ServiceManager struct {
	router chi.Router
	config *config.Config
	stores session.StoreFactoryInterface
	logger *log.Logger
}

// NewServiceManager creates a new instance of ServiceManager with the common middleware applied.
func NewServiceManager(cfg *config.Config, stores session.StoreFactoryInterface,
	logger *log.Logger) ServiceManagerInterface {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(func(next http.Handler) http.Handler {
		return log.AccessLogHandler(logger, next)
	})
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Compress(compressionLevel))

	return &ServiceManager{
		router: router,
		config: cfg,
		stores: stores,
		logger: logger,
	}
}

// RegisterServices registers the health check and widget services.
func (sm *ServiceManager) RegisterServices() error {
	healthcheck.Initialize(sm.router, healthcheck.Check{
		Name: "TokenStore",
		Probe: func(ctx context.Context) error {
			return sm.stores.Ping(ctx)
		},
	})
	widget.Initialize(sm.router, sm.config, sm.stores)

	sm.logger.Debug("Registered widget services")
	return nil
}

// Handler returns the router serving the registered services.
func (sm *ServiceManager) Handler() http.Handler {
	return sm.router
}
