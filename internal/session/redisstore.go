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
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/authwidget/internal/system/config"
)

// redisStore keeps the tokens in redis under <prefix><namespace>:<key>.
type redisStore struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore creates a token store backed by the given redis client.
func NewRedisStore(client redis.Cmdable, cfg config.RedisConfig, namespace string) TokenStoreInterface {
	return &redisStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix + namespace + ":",
		ttl:       time.Duration(cfg.TTL) * time.Second,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.keyPrefix+key, value, s.ttl).Err()
}
