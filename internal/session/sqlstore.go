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

import (
	"context"
	"fmt"
	"time"

	"github.com/asgardeo/authwidget/internal/system/database/client"
)

// sqlStore keeps the tokens in the TOKEN_STORE table.
type sqlStore struct {
	dbClient  client.DBClientInterface
	namespace string
}

// NewSQLStore creates a token store backed by the given database client.
func NewSQLStore(dbClient client.DBClientInterface, namespace string) TokenStoreInterface {
	return &sqlStore{
		dbClient:  dbClient,
		namespace: namespace,
	}
}

// EnsureSchema creates the token table when it does not exist.
func EnsureSchema(ctx context.Context, dbClient client.DBClientInterface) error {
	if _, err := dbClient.Execute(ctx, queryCreateTokenStoreTable); err != nil {
		return fmt.Errorf("failed to create token table: %w", err)
	}
	return nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	results, err := s.dbClient.Query(ctx, queryGetToken, s.namespace, key)
	if err != nil {
		return "", fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return "", ErrTokenNotFound
	}

	switch value := results[0]["token_value"].(type) {
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", fmt.Errorf("unexpected type for token_value: %T", value)
	}
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.dbClient.Execute(ctx, queryUpsertToken, s.namespace, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
