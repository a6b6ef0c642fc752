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
	"net/http"
	"sync"

	"github.com/asgardeo/authwidget/internal/system/config"
)

// cookieStore reads the tokens from the cookies of one request and writes updates back as
// Set-Cookie headers on its response.
type cookieStore struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	r       *http.Request
	cfg     config.CookieConfig
	written map[string]string
}

// NewCookieStore creates a token store bound to a single request and its response.
func NewCookieStore(w http.ResponseWriter, r *http.Request, cfg config.CookieConfig) TokenStoreInterface {
	return &cookieStore{
		w:       w,
		r:       r,
		cfg:     cfg,
		written: map[string]string{},
	}
}

func (s *cookieStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.written[key]; ok {
		return value, nil
	}

	cookie, err := s.r.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrTokenNotFound
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrTokenNotFound
	}
	return cookie.Value, nil
}

func (s *cookieStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     s.cfg.Path,
		Domain:   s.cfg.Domain,
		MaxAge:   s.cfg.MaxAge,
		Secure:   s.cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.written[key] = value
	return nil
}
