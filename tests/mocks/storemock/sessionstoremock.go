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

// Package storemock provides a mock implementation of the session store interface.
package storemock

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/renolink/orderflow/internal/wizard/model"
)

// SessionStoreInterfaceMock is a mock implementation of SessionStoreInterface.
type SessionStoreInterfaceMock struct {
	mock.Mock
}

// CreateSession mocks the CreateSession method.
func (m *SessionStoreInterfaceMock) CreateSession(session *model.WizardSession) error {
	ret := m.Called(session)
	return ret.Error(0)
}

// GetSession mocks the GetSession method.
func (m *SessionStoreInterfaceMock) GetSession(sessionID string) (*model.WizardSession, error) {
	ret := m.Called(sessionID)

	var session *model.WizardSession
	if ret.Get(0) != nil {
		session = ret.Get(0).(*model.WizardSession)
	}
	return session, ret.Error(1)
}

// UpdateSession mocks the UpdateSession method.
func (m *SessionStoreInterfaceMock) UpdateSession(session *model.WizardSession) error {
	ret := m.Called(session)
	return ret.Error(0)
}

// MarkSubmitting mocks the MarkSubmitting method.
func (m *SessionStoreInterfaceMock) MarkSubmitting(sessionID string) (bool, error) {
	ret := m.Called(sessionID)
	return ret.Bool(0), ret.Error(1)
}

// ClearSubmitting mocks the ClearSubmitting method.
func (m *SessionStoreInterfaceMock) ClearSubmitting(sessionID string) error {
	ret := m.Called(sessionID)
	return ret.Error(0)
}

// DeleteSession mocks the DeleteSession method.
func (m *SessionStoreInterfaceMock) DeleteSession(sessionID string) error {
	ret := m.Called(sessionID)
	return ret.Error(0)
}

// DeleteExpiredSessions mocks the DeleteExpiredSessions method.
func (m *SessionStoreInterfaceMock) DeleteExpiredSessions(olderThan time.Time) (int64, error) {
	ret := m.Called(olderThan)
	return ret.Get(0).(int64), ret.Error(1)
}
