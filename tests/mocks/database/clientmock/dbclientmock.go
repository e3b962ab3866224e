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

// Package clientmock provides a mock implementation of the database client interface.
package clientmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/renolink/orderflow/internal/system/database/model"
)

// DBClientInterfaceMock is a mock implementation of DBClientInterface.
type DBClientInterfaceMock struct {
	mock.Mock
}

// Query mocks the Query method.
func (m *DBClientInterfaceMock) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	callArgs := append([]interface{}{query}, args...)
	ret := m.Called(callArgs...)

	var results []map[string]interface{}
	if ret.Get(0) != nil {
		results = ret.Get(0).([]map[string]interface{})
	}
	return results, ret.Error(1)
}

// Execute mocks the Execute method.
func (m *DBClientInterfaceMock) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	callArgs := append([]interface{}{query}, args...)
	ret := m.Called(callArgs...)
	return ret.Get(0).(int64), ret.Error(1)
}

// BeginTx mocks the BeginTx method.
func (m *DBClientInterfaceMock) BeginTx() (model.TxInterface, error) {
	ret := m.Called()

	var tx model.TxInterface
	if ret.Get(0) != nil {
		tx = ret.Get(0).(model.TxInterface)
	}
	return tx, ret.Error(1)
}

// Close mocks the Close method.
func (m *DBClientInterfaceMock) Close() error {
	ret := m.Called()
	return ret.Error(0)
}
