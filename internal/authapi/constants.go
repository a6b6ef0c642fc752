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

// Paths of the remote auth API.
const (
	applicationPath   = "/api/applications/get/"
	customFieldsPath  = "/api/custom-fields"
	fieldsPath        = "/api/fields"
	oauthLoginPath    = "/api/oauth-login"
	refreshTokenPath  = "/api/users/refresh-token"
	userIDParam       = "userId"
	refreshTokenParam = "refreshToken"
)

// Operation names, used for span names and log fields.
const (
	operationGetApplication     = "GetApplication"
	operationGetCustomFields    = "GetCustomFields"
	operationGetFields          = "GetFields"
	operationGetOAuthLogins     = "GetOAuthLogins"
	operationRefreshAccessToken = "RefreshAccessToken"
	spanNamePrefix              = "authapi."
)

const errorBodyLimit = 4096
