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

package widget

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/asgardeo/authwidget/internal/authapi"
	"github.com/asgardeo/authwidget/internal/schema"
	"github.com/asgardeo/authwidget/internal/system/log"
)

// Load fetches the application, its fields and the OAuth providers concurrently and filters them by the
// ids the application enables. Failed queries yield empty collections; the result is never nil.
func Load(ctx context.Context, client authapi.AuthAPIClientInterface, applicationID, userID string) *WidgetData {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WidgetLoader"))

	var (
		app          *schema.Application
		customFields []schema.Field
		fields       []schema.Field
		logins       []schema.OAuthLogin
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app, _ = client.GetApplication(gctx, applicationID)
		return nil
	})
	g.Go(func() error {
		customFields, _ = client.GetCustomFields(gctx, userID)
		return nil
	})
	g.Go(func() error {
		fields, _ = client.GetFields(gctx)
		return nil
	})
	g.Go(func() error {
		logins, _ = client.GetOAuthLogins(gctx)
		return nil
	})
	_ = g.Wait()

	data := newEmptyWidgetData()
	if err := ctx.Err(); err != nil {
		logger.Debug("Widget load aborted", log.Error(err))
		return data
	}
	if app == nil {
		logger.Warn("Application configuration unavailable, rendering without dynamic fields",
			log.String(log.LoggerKeyApplicationID, applicationID))
		return data
	}

	data.Application = app
	data.OAuthProviders = FilterByIDs(logins, app.OAuthFields)
	data.SignInFields = FilterByIDs(fields, app.SignInFields)
	data.SignUpFields = FilterByIDs(fields, app.SignUpFields)
	data.CustomFields = FilterByIDs(customFields, app.CustomFields)

	if logger.IsDebugEnabled() {
		logger.Debug("Widget data loaded",
			log.Int("oauthProviders", len(data.OAuthProviders)),
			log.Int("signInFields", len(data.SignInFields)),
			log.Int("signUpFields", len(data.SignUpFields)),
			log.Int("customFields", len(data.CustomFields)))
	}
	return data
}
