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

// Package jwt provides helpers to inspect JWTs issued by the remote auth API.
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrMissingExpiry is returned when a token carries no exp claim.
var ErrMissingExpiry = errors.New("token has no exp claim")

// parser decodes tokens without verifying signatures. The widget never holds the signing key; the
// remote API remains the authority on token validity.
var parser = gojwt.NewParser()

// DecodeJWTPayload decodes the claims of a JWT without verifying its signature.
func DecodeJWTPayload(token string) (gojwt.MapClaims, error) {
	claims := gojwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode JWT: %w", err)
	}
	return claims, nil
}

// GetExpiry returns the expiry time of a JWT without verifying its signature.
func GetExpiry(token string) (time.Time, error) {
	claims, err := DecodeJWTPayload(token)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrMissingExpiry
	}
	return exp.Time, nil
}

// IsTokenExpired reports whether the token is expired at the given instant. A token that cannot be
// decoded, or that has no expiry, is treated as expired.
func IsTokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	exp, err := GetExpiry(token)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}
