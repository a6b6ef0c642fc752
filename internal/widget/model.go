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

import "github.com/asgardeo/authwidget/internal/schema"

// WidgetData holds the application configuration with its fields and providers filtered down to the
// ones enabled for the application.
type WidgetData struct {
	Application    *schema.Application `json:"application"`
	OAuthProviders []schema.OAuthLogin `json:"oauthProviders"`
	SignInFields   []schema.Field      `json:"signInFields"`
	SignUpFields   []schema.Field      `json:"signUpFields"`
	CustomFields   []schema.Field      `json:"customFields"`
}

// newEmptyWidgetData returns widget data with no application and empty collections.
func newEmptyWidgetData() *WidgetData {
	return &WidgetData{
		OAuthProviders: []schema.OAuthLogin{},
		SignInFields:   []schema.Field{},
		SignUpFields:   []schema.Field{},
		CustomFields:   []schema.Field{},
	}
}

// Fields returns the fields rendered in the given mode. Sign up renders the sign up fields followed by
// the custom fields.
func (d *WidgetData) Fields(mode Mode) []schema.Field {
	if mode.IsSignIn() {
		return d.SignInFields
	}
	fields := make([]schema.Field, 0, len(d.SignUpFields)+len(d.CustomFields))
	fields = append(fields, d.SignUpFields...)
	return append(fields, d.CustomFields...)
}

// Heading returns the custom heading of the application or the default one.
func (d *WidgetData) Heading() string {
	if d.Application != nil && d.Application.CustomHeading != "" {
		return d.Application.CustomHeading
	}
	return defaultHeading
}

// Description returns the custom description of the application or the default one.
func (d *WidgetData) Description() string {
	if d.Application != nil && d.Application.CustomDescription != "" {
		return d.Application.CustomDescription
	}
	return defaultDescription
}

// FormState is the interaction state carried between renders of the widget.
type FormState struct {
	Mode         Mode
	ShowPassword bool
	Values       map[string]string
}

// Input is a rendered form input.
type Input struct {
	Name        string
	Type        string
	Placeholder string
	Value       string
	Required    bool
	MinLength   *int
	MaxLength   *int
	// Maskable inputs render a visibility toggle.
	Maskable bool
	Checked  bool
}

// SubmissionResponse is the JSON body returned for a submitted form.
type SubmissionResponse struct {
	Mode   Mode           `json:"mode"`
	Values map[string]any `json:"values"`
}
