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

const (
	brandName          = "E2S-AUTH"
	defaultHeading     = "Sign in to your Account"
	defaultDescription = "Enter your email and password to continue"
	submittedNotice    = "Your details have been submitted."
)

// Form parameters posted back by the widget.
const (
	RememberMeField    = "rememberMe"
	modeParam          = "mode"
	actionParam        = "action"
	showPasswordParam  = "showPassword"
	checkboxCheckedVal = "on"
)

// Input types rendered by the widget.
const (
	inputTypeText     = "text"
	inputTypeEmail    = "email"
	inputTypePassword = "password"
	inputTypeCheckbox = "checkbox"
)

// Action is an interaction posted back to the widget.
type Action string

// Supported widget actions.
const (
	ActionTogglePassword Action = "toggle-password"
	ActionSwitchMode     Action = "switch-mode"
	ActionSubmit         Action = "submit"
)

const (
	widgetPath       = "/widget"
	widgetConfigPath = "/widget/config"
)
