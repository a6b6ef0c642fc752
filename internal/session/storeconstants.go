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

package session

import "github.com/asgardeo/authwidget/internal/system/database/model"

var (
	// queryCreateTokenStoreTable creates the token table when it does not exist.
	queryCreateTokenStoreTable = model.DBQuery{
		ID: "TSQ-TOKEN_STORE-01",
		Query: "CREATE TABLE IF NOT EXISTS TOKEN_STORE (" +
			"NAMESPACE VARCHAR(100) NOT NULL, " +
			"TOKEN_KEY VARCHAR(100) NOT NULL, " +
			"TOKEN_VALUE TEXT NOT NULL, " +
			"UPDATED_AT TIMESTAMP NOT NULL, " +
			"PRIMARY KEY (NAMESPACE, TOKEN_KEY))",
	}
	// queryGetToken is the query to get a token value by namespace and key.
	queryGetToken = model.DBQuery{
		ID:          "TSQ-TOKEN_STORE-02",
		Query:       "SELECT TOKEN_VALUE FROM TOKEN_STORE WHERE NAMESPACE = $1 AND TOKEN_KEY = $2",
		SQLiteQuery: "SELECT TOKEN_VALUE FROM TOKEN_STORE WHERE NAMESPACE = ? AND TOKEN_KEY = ?",
	}
	// queryUpsertToken is the query to insert a token or replace the stored value.
	queryUpsertToken = model.DBQuery{
		ID: "TSQ-TOKEN_STORE-03",
		Query: "INSERT INTO TOKEN_STORE (NAMESPACE, TOKEN_KEY, TOKEN_VALUE, UPDATED_AT) VALUES ($1, $2, $3, $4) " +
			"ON CONFLICT (NAMESPACE, TOKEN_KEY) DO UPDATE SET TOKEN_VALUE = EXCLUDED.TOKEN_VALUE, " +
			"UPDATED_AT = EXCLUDED.UPDATED_AT",
		SQLiteQuery: "INSERT INTO TOKEN_STORE (NAMESPACE, TOKEN_KEY, TOKEN_VALUE, UPDATED_AT) VALUES (?, ?, ?, ?) " +
			"ON CONFLICT (NAMESPACE, TOKEN_KEY) DO UPDATE SET TOKEN_VALUE = excluded.TOKEN_VALUE, " +
			"UPDATED_AT = excluded.UPDATED_AT",
	}
	// queryPingTokenStore checks that the token table is reachable.
	queryPingTokenStore = model.DBQuery{
		ID:    "TSQ-TOKEN_STORE-04",
		Query: "SELECT 1 FROM TOKEN_STORE LIMIT 1",
	}
)
