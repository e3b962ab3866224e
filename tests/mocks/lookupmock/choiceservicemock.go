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

// Package lookupmock provides a mock implementation of the choice service interface.
package lookupmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/renolink/orderflow/internal/wizard/lookup"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// ChoiceServiceInterfaceMock is a mock implementation of ChoiceServiceInterface.
type ChoiceServiceInterfaceMock struct {
	mock.Mock
}

// GetLeadChoices mocks the GetLeadChoices method.
func (m *ChoiceServiceInterfaceMock) GetLeadChoices(supplierID string) ([]model.Choice, string) {
	ret := m.Called(supplierID)

	var choices []model.Choice
	if ret.Get(0) != nil {
		choices = ret.Get(0).([]model.Choice)
	}
	return choices, ret.String(1)
}

// GetProjectChoices mocks the GetProjectChoices method.
func (m *ChoiceServiceInterfaceMock) GetProjectChoices(clientID string) ([]model.Choice, string) {
	ret := m.Called(clientID)

	var choices []model.Choice
	if ret.Get(0) != nil {
		choices = ret.Get(0).([]model.Choice)
	}
	return choices, ret.String(1)
}

// RefreshProjectChoices mocks the RefreshProjectChoices method.
func (m *ChoiceServiceInterfaceMock) RefreshProjectChoices(sessionID, clientID string,
	deliver func(choices []model.Choice, notice string)) {
	m.Called(sessionID, clientID, deliver)
}

// TrackProjectParent mocks the TrackProjectParent method.
func (m *ChoiceServiceInterfaceMock) TrackProjectParent(sessionID, clientID string) {
	m.Called(sessionID, clientID)
}

// ClearSession mocks the ClearSession method.
func (m *ChoiceServiceInterfaceMock) ClearSession(sessionID string) {
	m.Called(sessionID)
}

// GetOrderSummaries mocks the GetOrderSummaries method.
func (m *ChoiceServiceInterfaceMock) GetOrderSummaries(supplierID string) ([]lookup.OrderSummary, string) {
	ret := m.Called(supplierID)

	var summaries []lookup.OrderSummary
	if ret.Get(0) != nil {
		summaries = ret.Get(0).([]lookup.OrderSummary)
	}
	return summaries, ret.String(1)
}

// InvalidateLeads mocks the InvalidateLeads method.
func (m *ChoiceServiceInterfaceMock) InvalidateLeads(supplierID string) {
	m.Called(supplierID)
}

// InvalidateProjects mocks the InvalidateProjects method.
func (m *ChoiceServiceInterfaceMock) InvalidateProjects(clientID string) {
	m.Called(clientID)
}

// InvalidateOrders mocks the InvalidateOrders method.
func (m *ChoiceServiceInterfaceMock) InvalidateOrders(supplierID string) {
	m.Called(supplierID)
}
