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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authwidget/internal/managers"
	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/config"
	"github.com/asgardeo/authwidget/internal/system/log"
	"github.com/asgardeo/authwidget/tests/integration/testutils"
)

const (
	testApplication = `{"id": 7, "name": "Integration App", "customHeading": "Welcome back",
		"oauthFields": [1], "signInFields": [1, 2], "signUpFields": [1, 2, 3], "customFields": [20]}`
	testFields = `[{"id": 1, "fieldName": "email", "fieldType": "email", "placeHolder": "Email", "required": true},
		{"id": 2, "fieldName": "password", "fieldType": "PASSWORD", "placeHolder": "Password"},
		{"id": 3, "fieldName": "fullName", "fieldType": "TEXT", "placeHolder": "Full name"},
		{"id": 4, "fieldName": "", "fieldType": "TEXT"}]`
	testCustomFields = `[{"id": 20, "fieldName": "company", "fieldType": "TEXT"},
		{"id": 21, "fieldName": "hidden", "fieldType": "TEXT"}]`
	testOAuthLogins = `[{"id": 1, "fieldName": "Google", "fieldUrl": "https://accounts.example.com/google"},
		{"id": 2, "fieldName": "GitHub", "fieldUrl": "https://accounts.example.com/github"}]`
)

type WidgetIntegrationTestSuite struct {
	suite.Suite
	authAPI *testutils.MockAuthAPIServer
	server  *httptest.Server
	stores  session.StoreFactoryInterface
	client  *http.Client
}

func TestWidgetIntegrationSuite(t *testing.T) {
	suite.Run(t, new(WidgetIntegrationTestSuite))
}

func (suite *WidgetIntegrationTestSuite) SetupTest() {
	suite.authAPI = testutils.NewMockAuthAPIServer()
	suite.authAPI.Applications["app-7"] = testApplication
	suite.authAPI.CustomFields["99"] = testCustomFields
	suite.authAPI.Fields = testFields
	suite.authAPI.OAuthLogins = testOAuthLogins
	suite.authAPI.Start()

	cfg := &config.Config{
		AuthAPI: config.AuthAPIConfig{BaseURL: suite.authAPI.GetURL(), Timeout: 5},
		Widget:  config.WidgetConfig{ApplicationID: "app-7", UserID: "99"},
		Session: config.SessionConfig{
			Store:  config.SessionStoreCookie,
			Cookie: config.CookieConfig{Path: "/"},
		},
	}

	stores, err := session.NewStoreFactory(context.Background(), cfg.Session)
	suite.Require().NoError(err)
	suite.stores = stores

	manager := managers.NewServiceManager(cfg, stores, log.GetLogger())
	suite.Require().NoError(manager.RegisterServices())
	suite.server = httptest.NewServer(manager.Handler())

	jar, err := cookiejar.New(nil)
	suite.Require().NoError(err)
	suite.client = &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func (suite *WidgetIntegrationTestSuite) TearDownTest() {
	suite.server.Close()
	suite.authAPI.Stop()
	suite.NoError(suite.stores.Close())
}

func (suite *WidgetIntegrationTestSuite) setCookie(name, value string) {
	serverURL, err := url.Parse(suite.server.URL)
	suite.Require().NoError(err)
	suite.client.Jar.SetCookies(serverURL, []*http.Cookie{{Name: name, Value: value, Path: "/"}})
}

func (suite *WidgetIntegrationTestSuite) get(path string) (int, string) {
	resp, err := suite.client.Get(suite.server.URL + path)
	suite.Require().NoError(err)
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (suite *WidgetIntegrationTestSuite) TestRenderWithValidAccessToken() {
	suite.setCookie(session.AccessTokenKey, suite.authAPI.IssueAccessToken(time.Hour))

	status, body := suite.get("/widget")

	suite.Equal(http.StatusOK, status)
	suite.Contains(body, "<h1>Integration App</h1>")
	suite.Contains(body, "<h2>Welcome back</h2>")
	suite.Contains(body, `<input type="email" name="email" placeholder="Email" required>`)
	suite.Contains(body, `<input type="password" name="password" placeholder="Password">`)
	suite.Contains(body, `href="https://accounts.example.com/google"`)
	suite.NotContains(body, "GitHub")
	suite.Equal(0, suite.authAPI.RefreshCount())
}

func (suite *WidgetIntegrationTestSuite) TestRefreshesExpiredAccessTokenOnce() {
	suite.setCookie(session.AccessTokenKey, suite.authAPI.IssueAccessToken(-time.Minute))
	suite.setCookie(session.RefreshTokenKey, suite.authAPI.IssueRefreshToken())

	status, body := suite.get("/widget?mode=sign-up")
	suite.Equal(http.StatusOK, status)
	suite.Contains(body, `name="fullName"`)
	suite.Contains(body, `name="company"`)
	suite.NotContains(body, `name="hidden"`)

	suite.Equal(1, suite.authAPI.RefreshCount())

	status, _ = suite.get("/widget")
	suite.Equal(http.StatusOK, status)
	suite.Equal(1, suite.authAPI.RefreshCount(), "the refreshed token cookie must be reused")
}

func (suite *WidgetIntegrationTestSuite) TestRenderWithoutTokens() {
	status, body := suite.get("/widget")

	suite.Equal(http.StatusOK, status)
	suite.Contains(body, "Sign in to your Account")
	suite.NotContains(body, "Integration App")
	suite.Equal(0, suite.authAPI.QueryCount("/api/fields"))
}

func (suite *WidgetIntegrationTestSuite) TestWidgetConfig() {
	suite.setCookie(session.AccessTokenKey, suite.authAPI.IssueAccessToken(time.Hour))

	status, body := suite.get("/widget/config")
	suite.Require().Equal(http.StatusOK, status)

	var data struct {
		Application struct {
			Name string `json:"name"`
		} `json:"application"`
		SignInFields   []map[string]any `json:"signInFields"`
		SignUpFields   []map[string]any `json:"signUpFields"`
		CustomFields   []map[string]any `json:"customFields"`
		OAuthProviders []map[string]any `json:"oauthProviders"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(body), &data))
	suite.Equal("Integration App", data.Application.Name)
	suite.Len(data.SignInFields, 2)
	suite.Len(data.SignUpFields, 3)
	suite.Len(data.CustomFields, 1)
	suite.Len(data.OAuthProviders, 1)
	suite.Equal("EMAIL", data.SignInFields[0]["fieldType"])
}

func (suite *WidgetIntegrationTestSuite) TestSubmitSignIn() {
	suite.setCookie(session.AccessTokenKey, suite.authAPI.IssueAccessToken(time.Hour))

	form := url.Values{
		"mode":       {"sign-in"},
		"action":     {"submit"},
		"email":      {"a@b.com"},
		"password":   {"x"},
		"rememberMe": {"on"},
	}
	req, err := http.NewRequest(http.MethodPost, suite.server.URL+"/widget", strings.NewReader(form.Encode()))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := suite.client.Do(req)
	suite.Require().NoError(err)
	defer func() {
		_ = resp.Body.Close()
	}()
	suite.Equal(http.StatusOK, resp.StatusCode)

	var submitted struct {
		Mode   string         `json:"mode"`
		Values map[string]any `json:"values"`
	}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&submitted))
	suite.Equal("sign-in", submitted.Mode)
	suite.Equal(map[string]any{"email": "a@b.com", "password": "x", "rememberMe": true}, submitted.Values)
}

func (suite *WidgetIntegrationTestSuite) TestHealth() {
	status, _ := suite.get("/health/liveness")
	suite.Equal(http.StatusOK, status)

	status, body := suite.get("/health/readiness")
	suite.Equal(http.StatusOK, status)
	suite.Contains(body, `"status":"UP"`)
}
