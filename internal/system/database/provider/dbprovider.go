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

// Package provider opens database clients for the configured data sources.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"time"

	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/database/client"
	"github.com/asgardeo/authwidget/internal/system/database/model"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// dbConfig represents the resolved driver configuration of a data source.
type dbConfig struct {
	dsn        string
	driverName string
}

// OpenDBClient opens and pings a database client for the given data source.
// Relative SQLite paths are resolved against the server home directory.
func OpenDBClient(ctx context.Context, dataSource config.DataSource) (client.DBClientInterface, error) {
	cfg, err := getDBConfig(dataSource, config.GetRuntime().Home)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.driverName, cfg.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	return client.NewDBClient(model.NewDB(db), cfg.driverName), nil
}

// getDBConfig returns the driver configuration based on the provided data source.
func getDBConfig(dataSource config.DataSource, home string) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case dataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(home, dbPath)
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        dbPath + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported data source type: %q", dataSource.Type)
	}
}
