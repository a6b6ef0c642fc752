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
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/render"

	"github.com/asgardeo/authwidget/internal/session"
	"github.com/asgardeo/authwidget/internal/system/log"
	sysutils "github.com/asgardeo/authwidget/internal/system/utils"
)

// widgetHandler serves the widget endpoints.
type widgetHandler struct {
	service WidgetServiceInterface
	stores  session.StoreFactoryInterface
}

// newWidgetHandler creates a new instance of widgetHandler.
func newWidgetHandler(service WidgetServiceInterface, stores session.StoreFactoryInterface) *widgetHandler {
	return &widgetHandler{
		service: service,
		stores:  stores,
	}
}

// HandleWidgetGetRequest renders the widget in the requested mode.
func (h *widgetHandler) HandleWidgetGetRequest(w http.ResponseWriter, r *http.Request) {
	data := h.loadWidgetData(w, r)
	state := FormState{
		Mode:   ParseMode(r.URL.Query().Get(modeParam)),
		Values: map[string]string{},
	}
	templ.Handler(WidgetPage(data, state, "")).ServeHTTP(w, r)
}

// HandleWidgetPostRequest applies an action posted from the widget form.
func (h *widgetHandler) HandleWidgetPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WidgetHandler"))

	if err := r.ParseForm(); err != nil {
		logger.Debug("Failed to parse widget form", log.Error(err))
		sysutils.WriteServiceError(w, &ErrorInvalidForm)
		return
	}

	action := Action(r.PostForm.Get(actionParam))
	if action != ActionSubmit && action != ActionTogglePassword && action != ActionSwitchMode {
		sysutils.WriteServiceError(w, ErrorUnsupportedAction.WithDescription(
			"The action '"+string(action)+"' is not supported"))
		return
	}

	data := h.loadWidgetData(w, r)
	state := ParseFormState(r.PostForm, data)

	if action != ActionSubmit {
		next, err := state.Apply(action)
		if err != nil {
			sysutils.WriteServiceError(w, &ErrorUnsupportedAction)
			return
		}
		templ.Handler(WidgetPage(data, next, "")).ServeHTTP(w, r)
		return
	}

	values := CollectValues(state.Mode, data, r.PostForm)
	if svcErr := h.service.Submit(r.Context(), state.Mode, values); svcErr != nil {
		sysutils.WriteServiceError(w, svcErr)
		return
	}

	if sysutils.AcceptsJSON(r) {
		render.JSON(w, r, SubmissionResponse{Mode: state.Mode, Values: values})
		return
	}
	templ.Handler(WidgetPage(data, state, submittedNotice)).ServeHTTP(w, r)
}

// HandleWidgetConfigRequest returns the filtered widget data as JSON.
func (h *widgetHandler) HandleWidgetConfigRequest(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.loadWidgetData(w, r))
}

func (h *widgetHandler) loadWidgetData(w http.ResponseWriter, r *http.Request) *WidgetData {
	tokens := session.NewTokenProvider(h.stores.StoreFor(w, r))
	return h.service.LoadWidgetData(r.Context(), tokens)
}
