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

	"github.com/asgardeo/authwidget/internal/authapi"
	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/error/serviceerror"
	"github.com/asgardeo/authwidget/internal/system/log"
)

// ClientFactory creates an auth API client authenticating with the given tokens.
type ClientFactory func(tokens session.TokenProviderInterface) authapi.AuthAPIClientInterface

// WidgetServiceInterface defines the widget operations.
type WidgetServiceInterface interface {
	LoadWidgetData(ctx context.Context, tokens session.TokenProviderInterface) *WidgetData
	Submit(ctx context.Context, mode Mode, values map[string]any) *serviceerror.ServiceError
}

// widgetService is the default implementation of WidgetServiceInterface.
type widgetService struct {
	newClient     ClientFactory
	applicationID string
	userID        string
	submissions   SubmissionHandlerInterface
}

// NewWidgetService creates the widget service for the configured application and owner.
func NewWidgetService(newClient ClientFactory, cfg config.WidgetConfig,
	submissions SubmissionHandlerInterface) WidgetServiceInterface {
	return &widgetService{
		newClient:     newClient,
		applicationID: cfg.ApplicationID,
		userID:        cfg.UserID,
		submissions:   submissions,
	}
}

// LoadWidgetData loads and filters the widget configuration using the given session tokens.
func (s *widgetService) LoadWidgetData(ctx context.Context, tokens session.TokenProviderInterface) *WidgetData {
	return Load(ctx, s.newClient(tokens), s.applicationID, s.userID)
}

// Submit hands the collected values to the submission handler.
func (s *widgetService) Submit(ctx context.Context, mode Mode, values map[string]any) *serviceerror.ServiceError {
	if err := s.submissions.HandleSubmission(ctx, mode, values); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WidgetService"))
		logger.Error("Submission handler failed", log.Error(err))
		return &ErrorSubmissionFailed
	}
	return nil
}
