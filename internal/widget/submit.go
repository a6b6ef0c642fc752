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
	"strings"

	"github.com/asgardeo/authwidget/internal/system/log"
)

// SubmissionHandlerInterface receives the values collected from a submitted widget form.
type SubmissionHandlerInterface interface {
	HandleSubmission(ctx context.Context, mode Mode, values map[string]any) error
}

// loggingSubmissionHandler logs the submitted values with passwords masked.
type loggingSubmissionHandler struct {
	logger *log.Logger
}

// NewLoggingSubmissionHandler creates the default submission handler, which only logs the values.
func NewLoggingSubmissionHandler() SubmissionHandlerInterface {
	return &loggingSubmissionHandler{
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionHandler")),
	}
}

func (h *loggingSubmissionHandler) HandleSubmission(_ context.Context, mode Mode, values map[string]any) error {
	h.logger.Info("Form values submitted", log.String("mode", string(mode)),
		log.Any("values", maskValues(values)))
	return nil
}

// maskValues returns a copy of values with every password value masked.
func maskValues(values map[string]any) map[string]any {
	masked := make(map[string]any, len(values))
	for key, value := range values {
		if s, ok := value.(string); ok && isPasswordKey(key) {
			masked[key] = log.MaskString(s)
			continue
		}
		masked[key] = value
	}
	return masked
}

func isPasswordKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "password")
}
