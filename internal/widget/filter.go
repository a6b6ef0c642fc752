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

import "github.com/asgardeo/authwidget/internal/schema"

type identifiable interface {
	GetID() (schema.ID, bool)
}

// FilterByIDs returns the items whose id is listed in ids, in the order of items. Items without an id and
// ids without a matching item are ignored.
func FilterByIDs[T identifiable](items []T, ids []schema.ID) []T {
	filtered := make([]T, 0, len(ids))
	if len(items) == 0 || len(ids) == 0 {
		return filtered
	}

	wanted := make(map[schema.ID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	for _, item := range items {
		id, ok := item.GetID()
		if !ok {
			continue
		}
		if _, ok := wanted[id]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
