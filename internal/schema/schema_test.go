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
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SchemaTestSuite struct {
	suite.Suite
}

func TestSchemaSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

func (suite *SchemaTestSuite) TestIDUnmarshal() {
	testCases := []struct {
		name      string
		input     string
		expected  ID
		expectErr bool
	}{
		{"Number", `7`, 7, false},
		{"NumericString", `"42"`, 42, false},
		{"PaddedString", `" 5 "`, 5, false},
		{"Null", `null`, 0, false},
		{"Float", `1.5`, 0, true},
		{"Word", `"abc"`, 0, true},
		{"UUID", `"8f14e45f-ceea-4e2e-a2b5-6f1f2d7a9c11"`, 0, true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tc.input), &id)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func (suite *SchemaTestSuite) TestParseID() {
	id, err := ParseID("12")
	suite.NoError(err)
	suite.Equal(ID(12), id)
	suite.Equal("12", id.String())

	_, err = ParseID("twelve")
	suite.Error(err)
}

func (suite *SchemaTestSuite) TestParseApplicationDefaults() {
	app, err := ParseApplication([]byte(`{"id": 3, "name": "Demo"}`))
	suite.Require().NoError(err)

	suite.Equal(ID(3), *app.ID)
	suite.Equal("Demo", app.Name)
	suite.Equal(AppUserTypeUser, app.AppUserType)
	suite.NotEmpty(app.CreatedAt)
	suite.NoError(uuid.Validate(app.AgencyUniqueID))
	suite.Equal([]ID{}, app.OAuthFields)
	suite.Equal([]ID{}, app.SignInFields)
	suite.Equal([]ID{}, app.SignUpFields)
	suite.Equal([]ID{}, app.CustomFields)
	suite.Equal([]ID{}, app.UserIDs)
	suite.Empty(app.RecentActivities)
	suite.NotNil(app.Events)
	suite.False(app.MFAEnabled)
}

func (suite *SchemaTestSuite) TestParseApplicationIDLists() {
	body := `{
		"id": "9",
		"customHeading": "Welcome",
		"customLogoUrl": "https://cdn.example.com/logo.png",
		"clientEmail": "owner@example.com",
		"createdAt": "2024-05-01T10:00:00.000Z",
		"oauthFields": [1, "2"],
		"signInFields": [1, 3],
		"signUpFields": [2],
		"customFields": [10],
		"appUserType": "ADMIN",
		"recentActivities": [{"type": "login"}]
	}`

	app, err := ParseApplication([]byte(body))
	suite.Require().NoError(err)
	suite.Equal(ID(9), *app.ID)
	suite.Equal([]ID{1, 2}, app.OAuthFields)
	suite.Equal([]ID{1, 3}, app.SignInFields)
	suite.Equal([]ID{2}, app.SignUpFields)
	suite.Equal([]ID{10}, app.CustomFields)
	suite.Equal(AppUserTypeAdmin, app.AppUserType)
	suite.Len(app.RecentActivities, 1)
}

func (suite *SchemaTestSuite) TestParseApplicationLegacyOAuthFieldName() {
	app, err := ParseApplication([]byte(`{"oAuthFields": [4]}`))
	suite.Require().NoError(err)
	suite.Equal([]ID{4}, app.OAuthFields)
}

func (suite *SchemaTestSuite) TestParseApplicationInvalid() {
	testCases := []struct {
		name string
		body string
	}{
		{"NotJSON", `<html>`},
		{"Null", `null`},
		{"Array", `[]`},
		{"BadLogoURL", `{"customLogoUrl": "not a url"}`},
		{"BadEmail", `{"clientEmail": "nobody"}`},
		{"BadUserType", `{"appUserType": "GUEST"}`},
		{"BadAgencyID", `{"agencyUniqueId": "abc"}`},
		{"BadCreatedAt", `{"createdAt": "yesterday"}`},
		{"BadIDList", `{"signInFields": ["one"]}`},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			app, err := ParseApplication([]byte(tc.body))
			assert.Error(t, err)
			assert.Nil(t, app)
		})
	}
}

func (suite *SchemaTestSuite) TestParseFieldsDropsInvalidElements() {
	body := `[
		{"id": 1, "fieldName": "email", "fieldType": "EMAIL", "required": true},
		{"id": 2, "fieldName": "", "fieldType": "TEXT"},
		{"id": 3, "fieldName": "Password", "fieldType": "password", "mincaracter": 8, "maxcaracter": 64},
		{"id": 4, "fieldName": "nick", "fieldType": "COLOR"},
		{"id": 5, "fieldName": "age", "fieldType": "NUMBER", "mincaracter": 5, "maxcaracter": 2},
		{"id": "x", "fieldName": "bad", "fieldType": "TEXT"},
		{"fieldName": "site", "fieldType": "TEXT", "fieldLogoURL": "https://example.com/l.png", "options": ["a"]}
	]`

	fields, dropped, err := ParseFields([]byte(body))
	suite.Require().NoError(err)

	suite.Require().Len(fields, 3)
	suite.Equal("email", fields[0].FieldName)
	suite.Equal("Password", fields[1].FieldName)
	suite.Equal(FieldTypePassword, fields[1].FieldType)
	suite.Equal([]string{}, fields[0].Options)
	suite.Equal([]string{"a"}, fields[2].Options)
	_, ok := fields[2].GetID()
	suite.False(ok)

	suite.Require().Len(dropped, 4)
	suite.Equal(1, dropped[0].Index)
	suite.Equal(3, dropped[1].Index)
	suite.Equal(4, dropped[2].Index)
	suite.True(errors.Is(dropped[2], ErrCharacterRange))
	suite.Equal(5, dropped[3].Index)
	suite.Contains(dropped.Error(), "element 1")
}

func (suite *SchemaTestSuite) TestParseFieldsNotAList() {
	for _, body := range []string{`{"fieldName": "email"}`, `null`, `oops`} {
		fields, dropped, err := ParseFields([]byte(body))
		suite.Error(err, body)
		suite.Nil(fields)
		suite.Nil(dropped)
	}
}

func (suite *SchemaTestSuite) TestParseFieldsEmpty() {
	fields, dropped, err := ParseFields([]byte(`[]`))
	suite.NoError(err)
	suite.Empty(fields)
	suite.Empty(dropped)
}

func (suite *SchemaTestSuite) TestParseOAuthLogins() {
	body := `[
		{"id": 1, "fieldName": "Google", "fieldURL": "https://accounts.google.com", "logoURL": "https://cdn/g.png"},
		{"fieldName": "NoID"},
		{"id": 2, "fieldName": ""},
		{"id": "3", "fieldName": "GitHub", "logoURL": "not-a-url"},
		{"id": "4", "fieldName": "Apple"}
	]`

	logins, dropped, err := ParseOAuthLogins([]byte(body))
	suite.Require().NoError(err)
	suite.Require().Len(logins, 2)
	suite.Equal("Google", logins[0].FieldName)
	id, ok := logins[1].GetID()
	suite.True(ok)
	suite.Equal(ID(4), id)
	suite.Len(dropped, 3)
}

func (suite *SchemaTestSuite) TestIsPassword() {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"password", true},
		{"Password", true},
		{"PASSWORD", true},
		{"passwords", false},
		{"email", false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Field{FieldName: tc.name}.IsPassword())
		})
	}
}

func (suite *SchemaTestSuite) TestFieldValidateCharacterRange() {
	minChars, maxChars := 3, 3
	field := Field{FieldName: "pin", FieldType: FieldTypeNumber, MinCharacters: &minChars, MaxCharacters: &maxChars}
	suite.NoError(field.Validate())

	minChars = 4
	suite.ErrorIs(field.Validate(), ErrCharacterRange)

	negative := -1
	field = Field{FieldName: "pin", FieldType: FieldTypeNumber, MaxCharacters: &negative}
	suite.Error(field.Validate())
}
