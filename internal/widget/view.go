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
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const pageStyles = `<style>
body{margin:0;font-family:system-ui,sans-serif;background:#f3f4f6;display:flex;align-items:center;justify-content:center;min-height:100vh}
.widget{display:flex;width:28rem;background:#fff;border-radius:1rem;box-shadow:0 10px 25px rgba(0,0,0,.1)}
.brand{display:flex;align-items:center;justify-content:center;width:5rem;border-radius:1rem 0 0 1rem;background:linear-gradient(#6366f1,#d8b4fe);color:#fff}
.brand p{transform:rotate(-90deg);font-weight:700;font-size:.875rem;letter-spacing:.05em}
.content{flex:1;padding:1.5rem 1.5rem .25rem;text-align:center}
.field{position:relative;margin-bottom:1rem}
.field input{box-sizing:border-box;width:100%;padding:.5rem 1rem;border:1px solid #d1d5db;border-radius:.375rem}
.field .toggle{position:absolute;right:.75rem;top:.4rem;border:0;background:none;color:#6b7280;cursor:pointer}
.remember{display:flex;align-items:center;gap:.5rem;font-size:.875rem;color:#4b5563}
.primary{width:100%;margin-top:1.5rem;padding:.5rem;border:0;border-radius:.375rem;background:#6366f1;color:#fff;font-weight:500}
.oauth{display:flex;flex-direction:column;gap:.25rem;margin-top:.5rem}
.oauth-button{display:flex;justify-content:center;gap:.5rem;padding:.5rem;border:1px solid #e5e7eb;border-radius:.375rem;color:#111827;text-decoration:none;background:none}
.oauth-button img{height:1.25rem}
.link{border:0;background:none;font-weight:700;text-decoration:underline;cursor:pointer}
.notice{color:#047857;font-size:.875rem}
.powered strong{color:#9ca3af}
</style>`

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) urlAttr(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) flag(name string, set bool) {
	if set {
		h.raw(" " + name)
	}
}

// WidgetPage renders the widget as a complete HTML document.
func WidgetPage(data *WidgetData, state FormState, notice string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		if data.Application != nil && data.Application.Name != "" {
			h.text(data.Application.Name)
		} else {
			h.text(brandName)
		}
		h.raw(`</title>` + pageStyles + `</head><body>`)
		if h.err != nil {
			return h.err
		}
		if err := WidgetCard(data, state, notice).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

// WidgetCard renders the widget markup without the surrounding document.
func WidgetCard(data *WidgetData, state FormState, notice string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="widget"><div class="brand"><p>`)
		h.text(brandName)
		h.raw(`</p></div><div class="content">`)

		h.raw(`<div class="app">`)
		if data.Application != nil && data.Application.CustomLogoURL != "" {
			h.raw(`<img`)
			h.urlAttr("src", data.Application.CustomLogoURL)
			h.raw(` width="60" height="60" alt="logo">`)
		}
		if data.Application != nil && data.Application.Name != "" {
			h.raw(`<h1>`)
			h.text(data.Application.Name)
			h.raw(`</h1>`)
		}
		h.raw(`</div>`)

		h.raw(`<div class="header"><h2>`)
		h.text(data.Heading())
		h.raw(`</h2><p>`)
		h.text(data.Description())
		h.raw(`</p></div>`)

		if notice != "" {
			h.raw(`<p class="notice" role="status">`)
			h.text(notice)
			h.raw(`</p>`)
		}

		h.raw(`<form method="post"`)
		h.attr("action", widgetPath)
		h.raw(`><input type="hidden"`)
		h.attr("name", modeParam)
		h.attr("value", string(state.Mode))
		h.raw(`><input type="hidden"`)
		h.attr("name", showPasswordParam)
		h.attr("value", strconv.FormatBool(state.ShowPassword))
		h.raw(`><div class="fields">`)
		for _, input := range BuildInputs(state.Mode, data, state) {
			writeInput(h, input, state.ShowPassword)
		}
		h.raw(`</div>`)

		h.raw(`<button type="submit" class="primary"`)
		h.attr("name", actionParam)
		h.attr("value", string(ActionSubmit))
		h.raw(`>`)
		if state.Mode.IsSignIn() {
			h.text("SIGN IN")
		} else {
			h.text("SIGN UP")
		}
		h.raw(`</button>`)

		if state.Mode.IsSignIn() && len(data.OAuthProviders) > 0 {
			h.raw(`<div class="oauth">`)
			for _, provider := range data.OAuthProviders {
				if provider.FieldURL != "" {
					h.raw(`<a class="oauth-button"`)
					h.urlAttr("href", provider.FieldURL)
					h.raw(`>`)
				} else {
					h.raw(`<button type="button" class="oauth-button">`)
				}
				if provider.LogoURL != "" {
					h.raw(`<img`)
					h.urlAttr("src", provider.LogoURL)
					h.raw(` alt="field logo">`)
				}
				h.raw(`<span>`)
				h.text(provider.FieldName)
				h.raw(`</span>`)
				if provider.FieldURL != "" {
					h.raw(`</a>`)
				} else {
					h.raw(`</button>`)
				}
			}
			h.raw(`</div>`)
		}

		h.raw(`<div class="switch"><p>`)
		if state.Mode.IsSignIn() {
			h.text("New to us? ")
		} else {
			h.text("Already a member? ")
		}
		h.raw(`<button type="submit" class="link" formnovalidate`)
		h.attr("name", actionParam)
		h.attr("value", string(ActionSwitchMode))
		h.raw(`>`)
		if state.Mode.IsSignIn() {
			h.text("Sign Up")
		} else {
			h.text("Sign In")
		}
		h.raw(`</button></p><p class="powered">powered by <strong>@`)
		h.text(brandName)
		h.raw(`</strong></p></div></form></div></div>`)
		return h.err
	})
}

func writeInput(h *htmlWriter, input Input, showPassword bool) {
	if input.Type == inputTypeCheckbox {
		h.raw(`<label class="remember"><input type="checkbox"`)
		h.attr("name", input.Name)
		h.flag("checked", input.Checked)
		h.raw(`><span>Remember me</span></label>`)
		return
	}

	if input.Maskable {
		h.raw(`<div class="field password">`)
	} else {
		h.raw(`<div class="field">`)
	}
	h.raw(`<input`)
	h.attr("type", input.Type)
	h.attr("name", input.Name)
	if input.Placeholder != "" {
		h.attr("placeholder", input.Placeholder)
	}
	if input.Value != "" {
		h.attr("value", input.Value)
	}
	h.flag("required", input.Required)
	if input.MinLength != nil {
		h.attr("minlength", strconv.Itoa(*input.MinLength))
	}
	if input.MaxLength != nil {
		h.attr("maxlength", strconv.Itoa(*input.MaxLength))
	}
	h.raw(`>`)
	if input.Maskable {
		h.raw(`<button type="submit" class="toggle" formnovalidate`)
		h.attr("name", actionParam)
		h.attr("value", string(ActionTogglePassword))
		if showPassword {
			h.attr("aria-label", "Hide password")
			h.raw(`>Hide</button>`)
		} else {
			h.attr("aria-label", "Show password")
			h.raw(`>Show</button>`)
		}
	}
	h.raw(`</div>`)
}
