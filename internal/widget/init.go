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

// Package widget renders the sign in and sign up widget and handles the interactions posted back to it.
package widget

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/authwidget/internal/authapi"
	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	httpservice "github.com/asgardeo/authwidget/internal/system/http"
	"github.com/asgardeo/authwidget/internal/system/middleware"
)

// Initialize creates the widget service and registers its routes.
func Initialize(router chi.Router, cfg *config.Config, stores session.StoreFactoryInterface) {
	httpClient := httpservice.NewHTTPClient(time.Duration(cfg.AuthAPI.Timeout) * time.Second)
	newClient := func(tokens session.TokenProviderInterface) authapi.AuthAPIClientInterface {
		return authapi.NewAuthAPIClient(cfg.AuthAPI.BaseURL, httpClient, tokens)
	}

	widgetService := NewWidgetService(newClient, cfg.Widget, NewLoggingSubmissionHandler())
	widgetHandler := newWidgetHandler(widgetService, stores)
	registerRoutes(router, widgetHandler, cfg.CORS.AllowedOrigins)
}

// registerRoutes registers the routes for widget operations.
func registerRoutes(router chi.Router, widgetHandler *widgetHandler, allowedOrigins []string) {
	opts := middleware.CORSOptions{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.WithCORS(opts))
		r.Get(widgetPath, widgetHandler.HandleWidgetGetRequest)
		r.Post(widgetPath, widgetHandler.HandleWidgetPostRequest)
		r.Options(widgetPath, noContent)
		r.Get(widgetConfigPath, widgetHandler.HandleWidgetConfigRequest)
		r.Options(widgetConfigPath, noContent)
	})
}
