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

// Package authapi provides the authenticated queries against the remote auth API.
package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/asgardeo/authwidget/internal/schema"
	"github.com/asgardeo/authwidget/internal/session"
	sysconst "github.com/asgardeo/authwidget/internal/system/constants"
	"github.com/asgardeo/authwidget/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/authwidget/internal/system/http"
	"github.com/asgardeo/authwidget/internal/system/jwt"
	"github.com/asgardeo/authwidget/internal/system/log"
	"github.com/asgardeo/authwidget/internal/system/tracing"
)

// AuthAPIClientInterface defines the queries against the remote auth API. Each query returns nil and a
// service error on any failure; failures are logged and never panic.
type AuthAPIClientInterface interface {
	GetApplication(ctx context.Context, applicationID string) (*schema.Application, *serviceerror.ServiceError)
	GetCustomFields(ctx context.Context, userID string) ([]schema.Field, *serviceerror.ServiceError)
	GetFields(ctx context.Context) ([]schema.Field, *serviceerror.ServiceError)
	GetOAuthLogins(ctx context.Context) ([]schema.OAuthLogin, *serviceerror.ServiceError)
}

// authAPIClient is the default implementation of AuthAPIClientInterface. Concurrent queries that find
// the access token expired share a single refresh call.
type authAPIClient struct {
	baseURL      string
	httpClient   httpservice.HTTPClientInterface
	tokens       session.TokenProviderInterface
	now          func() time.Time
	refreshGroup singleflight.Group
	mu           sync.RWMutex
	refreshed    string
}

type refreshResult struct {
	token  string
	svcErr *serviceerror.ServiceError
}

// NewAuthAPIClient creates a client for the auth API at baseURL, authenticating with the tokens of the
// given provider.
func NewAuthAPIClient(baseURL string, httpClient httpservice.HTTPClientInterface,
	tokens session.TokenProviderInterface) AuthAPIClientInterface {
	return &authAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		now:        time.Now,
	}
}

// GetApplication retrieves the application with the given id.
func (c *authAPIClient) GetApplication(ctx context.Context, applicationID string) (
	*schema.Application, *serviceerror.ServiceError) {
	ctx, span, logger := c.startOperation(ctx, operationGetApplication)
	defer span.End()

	if strings.TrimSpace(applicationID) == "" {
		logger.Error("Application id is empty")
		return nil, endWithError(span, &ErrorInvalidRequest)
	}
	logger = logger.With(log.String(log.LoggerKeyApplicationID, applicationID))

	body, svcErr := c.get(ctx, span, logger, applicationPath+url.PathEscape(applicationID), nil)
	if svcErr != nil {
		return nil, endWithError(span, svcErr)
	}

	app, err := schema.ParseApplication(body)
	if err != nil {
		logger.Error("Invalid application in response", log.Error(err))
		return nil, endWithError(span, &ErrorInvalidResponse)
	}
	return app, nil
}

// GetCustomFields retrieves the custom fields owned by the given user.
func (c *authAPIClient) GetCustomFields(ctx context.Context, userID string) (
	[]schema.Field, *serviceerror.ServiceError) {
	ctx, span, logger := c.startOperation(ctx, operationGetCustomFields)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		logger.Error("User id is empty")
		return nil, endWithError(span, &ErrorInvalidRequest)
	}

	body, svcErr := c.get(ctx, span, logger, customFieldsPath, url.Values{userIDParam: {userID}})
	if svcErr != nil {
		return nil, endWithError(span, svcErr)
	}
	return parseFields(span, logger, body)
}

// GetFields retrieves the generic field definitions.
func (c *authAPIClient) GetFields(ctx context.Context) ([]schema.Field, *serviceerror.ServiceError) {
	ctx, span, logger := c.startOperation(ctx, operationGetFields)
	defer span.End()

	body, svcErr := c.get(ctx, span, logger, fieldsPath, nil)
	if svcErr != nil {
		return nil, endWithError(span, svcErr)
	}
	return parseFields(span, logger, body)
}

// GetOAuthLogins retrieves the OAuth provider descriptors.
func (c *authAPIClient) GetOAuthLogins(ctx context.Context) ([]schema.OAuthLogin, *serviceerror.ServiceError) {
	ctx, span, logger := c.startOperation(ctx, operationGetOAuthLogins)
	defer span.End()

	body, svcErr := c.get(ctx, span, logger, oauthLoginPath, nil)
	if svcErr != nil {
		return nil, endWithError(span, svcErr)
	}

	logins, dropped, err := schema.ParseOAuthLogins(body)
	if err != nil {
		logger.Error("Invalid OAuth provider list in response", log.Error(err))
		return nil, endWithError(span, &ErrorInvalidResponse)
	}
	logDropped(logger, dropped)
	return logins, nil
}

func parseFields(span trace.Span, logger *log.Logger, body []byte) ([]schema.Field, *serviceerror.ServiceError) {
	fields, dropped, err := schema.ParseFields(body)
	if err != nil {
		logger.Error("Invalid field list in response", log.Error(err))
		return nil, endWithError(span, &ErrorInvalidResponse)
	}
	logDropped(logger, dropped)
	return fields, nil
}

func logDropped(logger *log.Logger, dropped schema.ValidationErrors) {
	if len(dropped) > 0 {
		logger.Warn("Dropped invalid elements from response",
			log.Int("count", len(dropped)), log.Error(dropped))
	}
}

func (c *authAPIClient) startOperation(ctx context.Context, operation string) (
	context.Context, trace.Span, *log.Logger) {
	ctx, span := tracing.Tracer().Start(ctx, spanNamePrefix+operation)
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthAPIClient"),
		log.String("operation", operation))
	return ctx, span, logger
}

func endWithError(span trace.Span, svcErr *serviceerror.ServiceError) *serviceerror.ServiceError {
	span.RecordError(errors.New(svcErr.ErrorDescription), trace.WithAttributes(
		attribute.String("error.code", svcErr.Code)))
	span.SetStatus(codes.Error, svcErr.Error)
	return svcErr
}

// get issues an authenticated GET request and returns the body of a successful response.
func (c *authAPIClient) get(ctx context.Context, span trace.Span, logger *log.Logger, path string,
	query url.Values) ([]byte, *serviceerror.ServiceError) {
	token, svcErr := c.resolveAccessToken(ctx, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	span.SetAttributes(attribute.String("url.path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to create request", log.Error(err))
		return nil, &ErrorUnexpectedServerError
	}
	req.Header.Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	req.Header.Set(sysconst.AuthorizationHeaderName, sysconst.TokenTypeBearer+" "+token)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Request to auth API failed", log.Error(err))
		return nil, &ErrorRequestFailed
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		logger.Error("Auth API returned an error response",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, &ErrorUnauthorized
		}
		return nil, &ErrorUnexpectedStatus
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read response body", log.Error(err))
		return nil, &ErrorRequestFailed
	}
	return body, nil
}

// resolveAccessToken returns a usable access token, refreshing it once when the stored one is expired.
func (c *authAPIClient) resolveAccessToken(ctx context.Context, logger *log.Logger) (
	string, *serviceerror.ServiceError) {
	token := c.tokens.AccessToken(ctx)
	if !jwt.IsTokenExpired(token, c.now()) {
		return token, nil
	}

	logger.Debug("Access token is missing or expired, refreshing")
	refreshToken := c.tokens.RefreshToken(ctx)
	v, _, shared := c.refreshGroup.Do(refreshToken, func() (interface{}, error) {
		if current := c.currentAccessToken(ctx); current != "" {
			return refreshResult{token: current}, nil
		}
		refreshed, svcErr := c.refreshAccessToken(ctx, refreshToken)
		if svcErr == nil {
			c.mu.Lock()
			c.refreshed = refreshed
			c.mu.Unlock()
		}
		return refreshResult{token: refreshed, svcErr: svcErr}, nil
	})
	result := v.(refreshResult)
	if result.svcErr != nil {
		logger.Error("Unable to refresh token, the user may need to sign in again",
			log.String("error", result.svcErr.Code), log.Bool("shared", shared))
		return "", result.svcErr
	}
	return result.token, nil
}

// currentAccessToken returns an unexpired access token refreshed by an earlier call, or an empty string.
func (c *authAPIClient) currentAccessToken(ctx context.Context) string {
	if token := c.tokens.AccessToken(ctx); !jwt.IsTokenExpired(token, c.now()) {
		return token
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.refreshed != "" && !jwt.IsTokenExpired(c.refreshed, c.now()) {
		return c.refreshed
	}
	return ""
}

// refreshAccessToken exchanges the refresh token for a new access token and persists it.
func (c *authAPIClient) refreshAccessToken(ctx context.Context, refreshToken string) (
	string, *serviceerror.ServiceError) {
	ctx, span, logger := c.startOperation(ctx, operationRefreshAccessToken)
	defer span.End()

	if refreshToken == "" {
		logger.Error("No refresh token available")
		return "", endWithError(span, &ErrorMissingRefreshToken)
	}

	endpoint := c.baseURL + refreshTokenPath + "?" + url.Values{refreshTokenParam: {refreshToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, http.NoBody)
	if err != nil {
		logger.Error("Failed to create refresh request", log.Error(err))
		return "", endWithError(span, &ErrorTokenRefreshFailed)
	}
	req.Header.Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Refresh request to auth API failed", log.Error(err))
		return "", endWithError(span, &ErrorTokenRefreshFailed)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close refresh response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		logger.Error("Failed to refresh access token",
			log.Int("statusCode", resp.StatusCode), log.String("response", string(body)))
		return "", endWithError(span, &ErrorTokenRefreshFailed)
	}

	var tokenResp refreshTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		logger.Error("Failed to parse refresh response", log.Error(err))
		return "", endWithError(span, &ErrorTokenRefreshFailed)
	}
	if tokenResp.AccessToken == "" {
		logger.Error("Refresh response carries no access token")
		return "", endWithError(span, &ErrorTokenRefreshFailed)
	}

	if err := c.tokens.UpdateAccessToken(ctx, tokenResp.AccessToken); err != nil {
		logger.Warn("Failed to persist refreshed access token", log.Error(err))
	}
	return tokenResp.AccessToken, nil
}
