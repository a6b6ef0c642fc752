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

// Package main is the entry point for starting the widget server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/authwidget/internal/cert"
	"github.com/asgardeo/authwidget/internal/managers"
	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/log"
	"github.com/asgardeo/authwidget/internal/system/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.GetLogger()
	defer log.Sync()

	home := getServerHome(logger)

	initConfigurations(logger, home)
	cfg := &config.GetRuntime().Config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", log.Error(err))
	}

	stores, err := session.NewStoreFactory(ctx, cfg.Session)
	if err != nil {
		logger.Fatal("Failed to initialize token store", log.Error(err))
	}

	serviceManager := managers.NewServiceManager(cfg, stores, logger)
	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	server, serverAddr := createHTTPServer(cfg, serviceManager.Handler())
	serveErr := make(chan error, 1)
	go func() {
		if cfg.TLSEnabled() {
			serveErr <- startTLSServer(logger, cfg, server, serverAddr)
			return
		}
		logger.Info("TLS is not enabled, starting server without TLS")
		logger.Info("Widget server started (HTTP)...", log.String("address", serverAddr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down widget server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the server", log.Error(err))
	}
	if err := stores.Close(); err != nil {
		logger.Error("Failed to close token store", log.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Failed to flush traces", log.Error(err))
	}
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	homeFlag := flag.String("home", "", "Path to the widget server home directory")
	flag.Parse()

	if *homeFlag != "" {
		logger.Info("Using home from command line argument", log.String("home", *homeFlag))
		return *homeFlag
	}

	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the deployment file and applies the environment overrides.
func initConfigurations(logger *log.Logger, home string) {
	if err := config.LoadDotEnv(path.Join(home, ".env")); err != nil {
		logger.Fatal("Failed to load .env file", log.Error(err))
	}

	cfg, err := config.LoadConfig(config.DeploymentFile(home))
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	overrides, err := config.ParseEnv()
	if err != nil {
		logger.Fatal("Failed to read environment overrides", log.Error(err))
	}
	cfg.ApplyEnv(overrides)

	if cfg.Widget.ApplicationID == "" || cfg.Widget.UserID == "" {
		logger.Warn("Application id or user id is not configured, the widget renders without configuration")
	}

	if err := config.InitializeRuntime(home, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}
}

// startTLSServer serves HTTPS using the configured certificate and key.
func startTLSServer(logger *log.Logger, cfg *config.Config, server *http.Server, serverAddr string) error {
	tlsConfig, err := cert.GetTLSConfig(cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to load TLS configuration: %w", err)
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to start TLS listener: %w", err)
	}

	logger.Info("Widget server started (HTTPS)...", log.String("address", serverAddr))
	return server.Serve(ln)
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(cfg *config.Config, handler http.Handler) (*http.Server, string) {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       120 * time.Second,
	}
	return server, serverAddr
}
