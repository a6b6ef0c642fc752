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
	"github.com/asgardeo/authwidget/internal/schema"
)

func idPtr(id schema.ID) *schema.ID {
	return &id
}

func intPtr(v int) *int {
	return &v
}

func testFields() []schema.Field {
	return []schema.Field{
		{ID: idPtr(1), FieldName: "email", FieldType: schema.FieldTypeEmail, PlaceHolder: "Email", Required: true},
		{ID: idPtr(2), FieldName: "username", FieldType: schema.FieldTypeText, PlaceHolder: "Username"},
		{ID: idPtr(3), FieldName: "Password", FieldType: schema.FieldTypePassword, PlaceHolder: "Password",
			MinCharacters: intPtr(8), MaxCharacters: intPtr(64)},
		{FieldName: "orphan", FieldType: schema.FieldTypeText},
	}
}

func testCustomFields() []schema.Field {
	return []schema.Field{
		{ID: idPtr(10), FieldName: "company", FieldType: schema.FieldTypeText},
		{ID: idPtr(11), FieldName: "age", FieldType: schema.FieldTypeNumber},
	}
}

func testOAuthLogins() []schema.OAuthLogin {
	return []schema.OAuthLogin{
		{ID: idPtr(1), FieldName: "Google", FieldURL: "https://accounts.google.com/o/oauth2",
			LogoURL: "https://cdn.example.com/google.png"},
		{ID: idPtr(2), FieldName: "GitHub"},
	}
}

func testApplication() *schema.Application {
	return &schema.Application{
		ID:           idPtr(5),
		Name:         "Demo App",
		OAuthFields:  []schema.ID{1, 99},
		SignInFields: []schema.ID{1, 3},
		SignUpFields: []schema.ID{1, 2, 3},
		CustomFields: []schema.ID{10, 42},
	}
}

func testWidgetData() *WidgetData {
	app := testApplication()
	return &WidgetData{
		Application:    app,
		OAuthProviders: FilterByIDs(testOAuthLogins(), app.OAuthFields),
		SignInFields:   FilterByIDs(testFields(), app.SignInFields),
		SignUpFields:   FilterByIDs(testFields(), app.SignUpFields),
		CustomFields:   FilterByIDs(testCustomFields(), app.CustomFields),
	}
}
