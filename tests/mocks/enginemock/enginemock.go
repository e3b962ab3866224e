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

// Package enginemock provides a mock implementation of the wizard engine interface.
package enginemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// WizardEngineInterfaceMock is a mock implementation of WizardEngineInterface.
type WizardEngineInterfaceMock struct {
	mock.Mock
}

// Next mocks the Next method.
func (m *WizardEngineInterfaceMock) Next(session *model.WizardSession) *serviceerror.ServiceError {
	ret := m.Called(session)

	if ret.Get(0) != nil {
		return ret.Get(0).(*serviceerror.ServiceError)
	}
	return nil
}

// Back mocks the Back method.
func (m *WizardEngineInterfaceMock) Back(session *model.WizardSession) {
	m.Called(session)
}

// GoTo mocks the GoTo method.
func (m *WizardEngineInterfaceMock) GoTo(session *model.WizardSession, stepIndex int) *serviceerror.ServiceError {
	ret := m.Called(session, stepIndex)

	if ret.Get(0) != nil {
		return ret.Get(0).(*serviceerror.ServiceError)
	}
	return nil
}

// Submit mocks the Submit method.
func (m *WizardEngineInterfaceMock) Submit(session *model.WizardSession) (string, *serviceerror.ServiceError) {
	ret := m.Called(session)

	var svcErr *serviceerror.ServiceError
	if ret.Get(1) != nil {
		svcErr = ret.Get(1).(*serviceerror.ServiceError)
	}
	return ret.String(0), svcErr
}

// Reset mocks the Reset method.
func (m *WizardEngineInterfaceMock) Reset(session *model.WizardSession) {
	m.Called(session)
}
