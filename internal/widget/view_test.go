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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/authwidget/internal/schema"
)

type ViewTestSuite struct {
	suite.Suite
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewTestSuite))
}

func (suite *ViewTestSuite) render(data *WidgetData, state FormState, notice string) string {
	var buf bytes.Buffer
	suite.Require().NoError(WidgetPage(data, state, notice).Render(context.Background(), &buf))
	return buf.String()
}

func (suite *ViewTestSuite) TestRenderSignIn() {
	html := suite.render(testWidgetData(), FormState{Mode: ModeSignIn}, "")

	suite.Contains(html, "<title>Demo App</title>")
	suite.Contains(html, ">E2S-AUTH<")
	suite.Contains(html, "<h1>Demo App</h1>")
	suite.Contains(html, "<h2>Sign in to your Account</h2>")
	suite.Contains(html, "Enter your email and password to continue")
	suite.Contains(html, `<input type="email" name="email" placeholder="Email" required>`)
	suite.Contains(html, `<input type="password" name="Password" placeholder="Password" minlength="8" maxlength="64">`)
	suite.Contains(html, `value="toggle-password"`)
	suite.Contains(html, `<input type="checkbox" name="rememberMe">`)
	suite.Contains(html, ">SIGN IN</button>")
	suite.Contains(html, `href="https://accounts.google.com/o/oauth2"`)
	suite.Contains(html, `<span>Google</span>`)
	suite.NotContains(html, "GitHub")
	suite.Contains(html, "New to us? ")
	suite.Contains(html, ">Sign Up</button>")
	suite.Contains(html, "powered by <strong>@E2S-AUTH</strong>")
	suite.NotContains(html, "username")
}

func (suite *ViewTestSuite) TestRenderSignUp() {
	html := suite.render(testWidgetData(), FormState{Mode: ModeSignUp}, "")

	suite.Contains(html, ">SIGN UP</button>")
	suite.Contains(html, `name="username"`)
	suite.Contains(html, `name="company"`)
	suite.NotContains(html, "Google")
	suite.Contains(html, "Already a member? ")
	suite.Contains(html, ">Sign In</button>")
	suite.Contains(html, `<input type="hidden" name="mode" value="sign-up">`)
}

func (suite *ViewTestSuite) TestRenderShowPassword() {
	state := FormState{Mode: ModeSignIn, ShowPassword: true, Values: map[string]string{"Password": "s3cret"}}
	html := suite.render(testWidgetData(), state, "")

	suite.Contains(html, `<input type="text" name="Password" placeholder="Password" value="s3cret"`)
	suite.Contains(html, `aria-label="Hide password"`)
	suite.Contains(html, `<input type="hidden" name="showPassword" value="true">`)
}

func (suite *ViewTestSuite) TestRenderWithoutData() {
	html := suite.render(newEmptyWidgetData(), FormState{Mode: ModeSignIn}, "")

	suite.Contains(html, "<title>E2S-AUTH</title>")
	suite.Contains(html, "Sign in to your Account")
	suite.NotContains(html, "<h1>")
	suite.NotContains(html, `class="oauth"`)
	suite.NotContains(html, "toggle-password")
	suite.Equal(1, strings.Count(html, "<input type=\"checkbox\""))
	suite.Equal(0, strings.Count(html, `<div class="field`))
}

func (suite *ViewTestSuite) TestRenderCustomTextEscaped() {
	data := testWidgetData()
	data.Application.CustomHeading = `<script>alert("x")</script>`
	data.Application.CustomDescription = "Tom & Jerry"
	data.OAuthProviders = []schema.OAuthLogin{{ID: idPtr(1), FieldName: "Evil", FieldURL: "javascript:alert(1)"}}

	html := suite.render(data, FormState{Mode: ModeSignIn, Values: map[string]string{"email": `"><b>`}}, "")

	suite.NotContains(html, "<script>")
	suite.Contains(html, "&lt;script&gt;")
	suite.Contains(html, "Tom &amp; Jerry")
	suite.NotContains(html, "javascript:alert")
	suite.NotContains(html, `"><b>`)
}

func (suite *ViewTestSuite) TestRenderNotice() {
	html := suite.render(testWidgetData(), FormState{Mode: ModeSignIn}, submittedNotice)
	suite.Contains(html, `<p class="notice" role="status">`+submittedNotice+`</p>`)
}
