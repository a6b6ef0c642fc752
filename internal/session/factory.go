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

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/database/client"
	dbprovider "github.com/asgardeo/authwidget/internal/system/database/provider"
	"github.com/asgardeo/authwidget/internal/system/log"
)

// StoreFactoryInterface resolves the token store serving one HTTP request.
type StoreFactoryInterface interface {
	StoreFor(w http.ResponseWriter, r *http.Request) TokenStoreInterface
	// Ping checks that the backing store is reachable. Stores without a backend always succeed.
	Ping(ctx context.Context) error
	Close() error
}

// storeFactory hands out either a per request cookie store or one shared store.
type storeFactory struct {
	cookie   *config.CookieConfig
	shared   TokenStoreInterface
	pingFn   func(ctx context.Context) error
	closeFns []func() error
}

// NewStoreFactory creates the store factory for the configured store type.
func NewStoreFactory(ctx context.Context, cfg config.SessionConfig) (StoreFactoryInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "StoreFactory"))

	switch cfg.Store {
	case config.SessionStoreCookie:
		cookie := cfg.Cookie
		return &storeFactory{cookie: &cookie}, nil
	case config.SessionStoreMemory:
		return &storeFactory{shared: NewMemoryStore(nil)}, nil
	case config.SessionStoreRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
		}
		logger.Debug("Using redis token store", log.String("address", cfg.Redis.Address))
		return &storeFactory{
			shared: NewRedisStore(redisClient, cfg.Redis, cfg.Namespace),
			pingFn: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
			closeFns: []func() error{redisClient.Close},
		}, nil
	case config.SessionStoreDatabase:
		dbClient, err := dbprovider.OpenDBClient(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return newSQLStoreFactory(ctx, dbClient, cfg.Namespace)
	default:
		return nil, fmt.Errorf("unsupported token store: %q", cfg.Store)
	}
}

func newSQLStoreFactory(ctx context.Context, dbClient client.DBClientInterface,
	namespace string) (StoreFactoryInterface, error) {
	if err := EnsureSchema(ctx, dbClient); err != nil {
		return nil, errors.Join(err, dbClient.Close())
	}
	return &storeFactory{
		shared: NewSQLStore(dbClient, namespace),
		pingFn: func(ctx context.Context) error {
			_, err := dbClient.Query(ctx, queryPingTokenStore)
			return err
		},
		closeFns: []func() error{dbClient.Close},
	}, nil
}

// StoreFor returns the store for the given request.
func (f *storeFactory) StoreFor(w http.ResponseWriter, r *http.Request) TokenStoreInterface {
	if f.cookie != nil {
		return NewCookieStore(w, r, *f.cookie)
	}
	return f.shared
}

// Ping checks the connection of the shared store.
func (f *storeFactory) Ping(ctx context.Context) error {
	if f.pingFn == nil {
		return nil
	}
	return f.pingFn(ctx)
}

// Close releases the connections held by the shared store.
func (f *storeFactory) Close() error {
	var errs []error
	for _, closeFn := range f.closeFns {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
