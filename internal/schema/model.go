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

// Package schema defines the validated shapes of the configuration served by the remote auth API.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is the numeric identifier shared by every entity and every id list.
type ID int64

// ParseID parses the decimal form of an identifier.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(v), nil
}

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON accepts a JSON integer or a JSON string holding an integer.
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", raw, err)
	}
	*id = ID(v)
	return nil
}

// FieldType is the declared input type of a field.
type FieldType string

// AppUserType is the audience an application is registered for.
type AppUserType string

// Field describes one form input. The same shape is served by the field and custom field collections;
// IsAvailableForSignIn is only populated by the former.
type Field struct {
	ID                   *ID       `json:"id,omitempty"`
	FieldName            string    `json:"fieldName" validate:"required"`
	FieldType            FieldType `json:"fieldType" validate:"required,oneof=TEXT NUMBER BOOLEAN EMAIL PASSWORD DATE"`
	Required             bool      `json:"required"`
	ErrorMessage         string    `json:"errorMessage,omitempty"`
	PlaceHolder          string    `json:"placeHolder,omitempty"`
	IsAvailableForSignIn *bool     `json:"isAvailableForSignIn,omitempty"`
	MaxCharacters        *int      `json:"maxcaracter,omitempty" validate:"omitempty,min=0"`
	MinCharacters        *int      `json:"mincaracter,omitempty" validate:"omitempty,min=0"`
	FieldLogoURL         string    `json:"fieldLogoURL,omitempty" validate:"omitempty,url"`
	UserID               *ID       `json:"userId,omitempty"`
	Options              []string  `json:"options"`
	IsAddedAsCustomField bool      `json:"isAddedAsCustomField"`
}

// IsPassword reports whether the field holds a password.
func (f Field) IsPassword() bool {
	return strings.EqualFold(f.FieldName, passwordFieldName)
}

// GetID returns the field id, and false when the field has none.
func (f Field) GetID() (ID, bool) {
	if f.ID == nil {
		return 0, false
	}
	return *f.ID, true
}

// OAuthLogin describes a third party sign in provider.
type OAuthLogin struct {
	ID        *ID    `json:"id" validate:"required"`
	FieldName string `json:"fieldName" validate:"required"`
	FieldURL  string `json:"fieldURL,omitempty" validate:"omitempty,url"`
	LogoURL   string `json:"logoURL,omitempty" validate:"omitempty,url"`
}

// GetID returns the provider id, and false when the provider has none.
func (o OAuthLogin) GetID() (ID, bool) {
	if o.ID == nil {
		return 0, false
	}
	return *o.ID, true
}

// Application holds the branding of an application and the ids of the fields and providers enabled for it.
type Application struct {
	ID                *ID              `json:"id,omitempty"`
	Name              string           `json:"name,omitempty"`
	CreatedAt         string           `json:"createdAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedAt         string           `json:"updatedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CustomHeading     string           `json:"customHeading,omitempty"`
	CustomDescription string           `json:"customDescription,omitempty"`
	CustomLogoURL     string           `json:"customLogoUrl,omitempty" validate:"omitempty,url"`
	UserIDs           []ID             `json:"userId"`
	DevUserID         *ID              `json:"devUserId,omitempty"`
	AgencyUniqueID    string           `json:"agencyUniqueId" validate:"omitempty,uuid"`
	ClientEmail       string           `json:"clientEmail,omitempty" validate:"omitempty,email"`
	OAuthFields       []ID             `json:"oauthFields"`
	SignInFields      []ID             `json:"signInFields"`
	SignUpFields      []ID             `json:"signUpFields"`
	CustomFields      []ID             `json:"customFields"`
	AppUserType       AppUserType      `json:"appUserType" validate:"oneof=USER ADMIN SUPER_ADMIN"`
	MFAEnabled        bool             `json:"mfaEnabled"`
	RecentActivities  []map[string]any `json:"recentActivities"`
	Events            []map[string]any `json:"events"`
}
