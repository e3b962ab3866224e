/*
 * Copyright (c) 2026, Renolink Inc. (https://renolink.io).
 *
 * Renolink Inc. licenses this file to you under the Apache License,
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

// Package modelmock provides mock implementations of the database model interfaces.
package modelmock

import (
	"database/sql"

	"github.com/stretchr/testify/mock"
)

// TxInterfaceMock is a mock implementation of TxInterface.
type TxInterfaceMock struct {
	mock.Mock
}

// Commit mocks the Commit method.
func (m *TxInterfaceMock) Commit() error {
	ret := m.Called()
	return ret.Error(0)
}

// Rollback mocks the Rollback method.
func (m *TxInterfaceMock) Rollback() error {
	ret := m.Called()
	return ret.Error(0)
}

// Exec mocks the Exec method.
func (m *TxInterfaceMock) Exec(query string, args ...any) (sql.Result, error) {
	callArgs := append([]interface{}{query}, args...)
	ret := m.Called(callArgs...)

	var result sql.Result
	if ret.Get(0) != nil {
		result = ret.Get(0).(sql.Result)
	}
	return result, ret.Error(1)
}

// Query mocks the Query method.
func (m *TxInterfaceMock) Query(query string, args ...any) (*sql.Rows, error) {
	callArgs := append([]interface{}{query}, args...)
	ret := m.Called(callArgs...)

	var rows *sql.Rows
	if ret.Get(0) != nil {
		rows = ret.Get(0).(*sql.Rows)
	}
	return rows, ret.Error(1)
}
