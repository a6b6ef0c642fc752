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

package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	sysutils "github.com/asgardeo/authwidget/internal/system/utils"
)

// ErrCharacterRange is returned when a field declares a minimum length above its maximum length.
var ErrCharacterRange = errors.New("mincaracter must not exceed maxcaracter")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(fieldStructLevelValidation, Field{})
	return v
}

func fieldStructLevelValidation(sl validator.StructLevel) {
	field := sl.Current().Interface().(Field)
	if field.MinCharacters != nil && field.MaxCharacters != nil && *field.MinCharacters > *field.MaxCharacters {
		sl.ReportError(field.MinCharacters, "MinCharacters", "mincaracter", "ltefield", "MaxCharacters")
	}
}

// ValidationError reports an element of a collection that was dropped during parsing.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors lists the elements dropped from a collection.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ApplyDefaults fills the optional attributes the server may leave out.
func (f *Field) ApplyDefaults() {
	f.FieldType = FieldType(strings.ToUpper(string(f.FieldType)))
	if f.Options == nil {
		f.Options = []string{}
	}
}

// Validate checks the field against its schema.
func (f *Field) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "ltefield" {
					return ErrCharacterRange
				}
			}
		}
		return err
	}
	return nil
}

// Validate checks the provider against its schema.
func (o *OAuthLogin) Validate() error {
	return validate.Struct(o)
}

// ApplyDefaults fills the optional attributes the server may leave out.
func (a *Application) ApplyDefaults() {
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if a.AgencyUniqueID == "" {
		a.AgencyUniqueID = sysutils.GenerateUUID()
	}
	if a.AppUserType == "" {
		a.AppUserType = AppUserTypeUser
	}
	if a.UserIDs == nil {
		a.UserIDs = []ID{}
	}
	if a.OAuthFields == nil {
		a.OAuthFields = []ID{}
	}
	if a.SignInFields == nil {
		a.SignInFields = []ID{}
	}
	if a.SignUpFields == nil {
		a.SignUpFields = []ID{}
	}
	if a.CustomFields == nil {
		a.CustomFields = []ID{}
	}
	if a.RecentActivities == nil {
		a.RecentActivities = []map[string]any{}
	}
	if a.Events == nil {
		a.Events = []map[string]any{}
	}
}

// Validate checks the application against its schema.
func (a *Application) Validate() error {
	return validate.Struct(a)
}
