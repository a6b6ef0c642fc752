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

	"github.com/asgardeo/authwidget/internal/system/log"
)

// TokenProviderInterface supplies the tokens of the current session to the query layer.
type TokenProviderInterface interface {
	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
	UpdateAccessToken(ctx context.Context, token string) error
}

// tokenProvider is the default implementation of TokenProviderInterface.
type tokenProvider struct {
	store TokenStoreInterface
}

// NewTokenProvider creates a token provider reading from and writing to the given store.
func NewTokenProvider(store TokenStoreInterface) TokenProviderInterface {
	return &tokenProvider{store: store}
}

// AccessToken returns the stored access token, or an empty string when there is none.
func (p *tokenProvider) AccessToken(ctx context.Context) string {
	return p.get(ctx, AccessTokenKey)
}

// RefreshToken returns the stored refresh token, or an empty string when there is none.
func (p *tokenProvider) RefreshToken(ctx context.Context) string {
	return p.get(ctx, RefreshTokenKey)
}

// UpdateAccessToken persists a refreshed access token.
func (p *tokenProvider) UpdateAccessToken(ctx context.Context, token string) error {
	return p.store.Set(ctx, AccessTokenKey, token)
}

func (p *tokenProvider) get(ctx context.Context, key string) string {
	value, err := p.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrTokenNotFound) {
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TokenProvider"))
			logger.Warn("Failed to read token from the store", log.String("key", key), log.Error(err))
		}
		return ""
	}
	return value
}
