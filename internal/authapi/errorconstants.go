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

package authapi

import "github.com/asgardeo/authwidget/internal/system/error/serviceerror"

// Client errors for the auth API queries.
var (
	// ErrorInvalidRequest is the error returned when a query is missing a required parameter.
	ErrorInvalidRequest = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHAPI-1001",
		Error:            "Invalid request",
		ErrorDescription: "A required query parameter is missing",
	}
	// ErrorMissingRefreshToken is the error returned when the access token expired and no refresh token is stored.
	ErrorMissingRefreshToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHAPI-1002",
		Error:            "Missing refresh token",
		ErrorDescription: "The access token has expired and no refresh token is available",
	}
	// ErrorTokenRefreshFailed is the error returned when the access token could not be refreshed.
	ErrorTokenRefreshFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHAPI-1003",
		Error:            "Token refresh failed",
		ErrorDescription: "Unable to refresh the access token, the user may need to sign in again",
	}
	// ErrorUnauthorized is the error returned when the auth API rejects the access token.
	ErrorUnauthorized = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHAPI-1004",
		Error:            "Unauthorized",
		ErrorDescription: "The auth API rejected the access token",
	}
)

// Server errors for the auth API queries.
var (
	// ErrorRequestFailed is the error returned when the auth API could not be reached.
	ErrorRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHAPI-1005",
		Error:            "Request failed",
		ErrorDescription: "The request to the auth API failed",
	}
	// ErrorUnexpectedStatus is the error returned when the auth API responds with a non success status.
	ErrorUnexpectedStatus = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHAPI-1006",
		Error:            "Unexpected response status",
		ErrorDescription: "The auth API responded with an unexpected status",
	}
	// ErrorInvalidResponse is the error returned when a response body does not match its schema.
	ErrorInvalidResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHAPI-1007",
		Error:            "Invalid response",
		ErrorDescription: "The auth API response could not be parsed",
	}
	// ErrorUnexpectedServerError is the error returned when an unexpected error occurs while building a request.
	ErrorUnexpectedServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHAPI-1008",
		Error:            "Unexpected server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
