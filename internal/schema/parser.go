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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullBody = errors.New("body is null")

// ParseApplication decodes an application, injects its defaults and validates it.
func ParseApplication(data []byte) (*Application, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("failed to decode application: %w", errNullBody)
	}
	var app Application
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("failed to decode application: %w", err)
	}
	app.ApplyDefaults()
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application: %w", err)
	}
	return &app, nil
}

// ParseFields decodes a JSON array of fields. Invalid elements are dropped and reported in the
// returned ValidationErrors; the remaining elements keep their order.
func ParseFields(data []byte) ([]Field, ValidationErrors, error) {
	return parseList(data, func(f *Field) error {
		f.ApplyDefaults()
		return f.Validate()
	})
}

// ParseOAuthLogins decodes a JSON array of providers. Invalid elements are dropped and reported in the
// returned ValidationErrors; the remaining elements keep their order.
func ParseOAuthLogins(data []byte) ([]OAuthLogin, ValidationErrors, error) {
	return parseList(data, func(o *OAuthLogin) error {
		return o.Validate()
	})
}

func parseList[T any](data []byte, check func(*T) error) ([]T, ValidationErrors, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if elements == nil {
		return nil, nil, fmt.Errorf("failed to decode list: %w", errNullBody)
	}

	items := make([]T, 0, len(elements))
	var dropped ValidationErrors
	for i, element := range elements {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			dropped = append(dropped, &ValidationError{Index: i, Err: err})
			continue
		}
		if err := check(&item); err != nil {
			dropped = append(dropped, &ValidationError{Index: i, Err: err})
			continue
		}
		items = append(items, item)
	}
	return items, dropped, nil
}
