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

import "github.com/asgardeo/authwidget/internal/system/error/serviceerror"

// Client errors for widget interactions.
var (
	// ErrorInvalidForm is the error returned when the posted form cannot be parsed.
	ErrorInvalidForm = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WIDGET-1001",
		Error:            "Invalid form",
		ErrorDescription: "The posted form could not be parsed",
	}
	// ErrorUnsupportedAction is the error returned when the posted action is unknown.
	ErrorUnsupportedAction = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WIDGET-1002",
		Error:            "Unsupported action",
		ErrorDescription: "The posted action is not supported",
	}
)

// Server errors for widget interactions.
var (
	// ErrorSubmissionFailed is the error returned when the submission handler rejects the form values.
	ErrorSubmissionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WIDGET-1003",
		Error:            "Submission failed",
		ErrorDescription: "The submitted values could not be processed",
	}
)
