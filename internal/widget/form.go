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
	"fmt"
	"net/url"
	"strconv"

	"github.com/asgardeo/authwidget/internal/schema"
)

// BuildInputs maps the fields of the mode to form inputs and appends the remember me checkbox.
func BuildInputs(mode Mode, data *WidgetData, state FormState) []Input {
	fields := data.Fields(mode)
	inputs := make([]Input, 0, len(fields)+1)
	for _, field := range fields {
		inputs = append(inputs, Input{
			Name:        field.FieldName,
			Type:        inputType(field, state.ShowPassword),
			Placeholder: field.PlaceHolder,
			Value:       state.Values[field.FieldName],
			Required:    field.Required,
			MinLength:   field.MinCharacters,
			MaxLength:   field.MaxCharacters,
			Maskable:    field.IsPassword(),
		})
	}
	return append(inputs, Input{
		Name:    RememberMeField,
		Type:    inputTypeCheckbox,
		Checked: isChecked(state.Values[RememberMeField]),
	})
}

func inputType(field schema.Field, showPassword bool) string {
	if field.IsPassword() {
		if showPassword {
			return inputTypeText
		}
		return inputTypePassword
	}
	if field.FieldType == schema.FieldTypeEmail {
		return inputTypeEmail
	}
	return inputTypeText
}

// CollectValues returns the submitted values of the fields rendered in the mode, plus rememberMe as a bool.
func CollectValues(mode Mode, data *WidgetData, form url.Values) map[string]any {
	values := map[string]any{}
	for _, field := range data.Fields(mode) {
		if _, ok := form[field.FieldName]; ok {
			values[field.FieldName] = form.Get(field.FieldName)
		}
	}
	values[RememberMeField] = isChecked(form.Get(RememberMeField))
	return values
}

// ParseFormState restores the form state from posted form values.
func ParseFormState(form url.Values, data *WidgetData) FormState {
	mode := ParseMode(form.Get(modeParam))
	showPassword, _ := strconv.ParseBool(form.Get(showPasswordParam))

	values := map[string]string{}
	for _, m := range []Mode{ModeSignIn, ModeSignUp} {
		for _, field := range data.Fields(m) {
			if _, ok := form[field.FieldName]; ok {
				values[field.FieldName] = form.Get(field.FieldName)
			}
		}
	}
	if isChecked(form.Get(RememberMeField)) {
		values[RememberMeField] = checkboxCheckedVal
	}

	return FormState{
		Mode:         mode,
		ShowPassword: showPassword,
		Values:       values,
	}
}

// Apply returns the state after a toggle-password or switch-mode action. Form values are left untouched.
func (s FormState) Apply(action Action) (FormState, error) {
	switch action {
	case ActionTogglePassword:
		s.ShowPassword = !s.ShowPassword
	case ActionSwitchMode:
		s.Mode = s.Mode.Toggle()
	default:
		return s, fmt.Errorf("unsupported action: %q", action)
	}
	return s, nil
}

func isChecked(value string) bool {
	if value == checkboxCheckedVal {
		return true
	}
	checked, _ := strconv.ParseBool(value)
	return checked
}
