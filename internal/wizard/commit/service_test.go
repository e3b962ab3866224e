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

package commit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/renolink/orderflow/internal/wizard/commit"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
	"github.com/renolink/orderflow/tests/mocks/commitmock"
	"github.com/renolink/orderflow/tests/mocks/lookupmock"
)

type CommitServiceTestSuite struct {
	suite.Suite
	store   *commitmock.OrderBundleStoreInterfaceMock
	choices *lookupmock.ChoiceServiceInterfaceMock
	service commit.CommitServiceInterface
}

func TestCommitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommitServiceTestSuite))
}

func (s *CommitServiceTestSuite) SetupTest() {
	s.store = new(commitmock.OrderBundleStoreInterfaceMock)
	s.choices = new(lookupmock.ChoiceServiceInterfaceMock)
	s.service = commit.NewCommitService(s.store, s.choices)
}

func (s *CommitServiceTestSuite) TestCreateOrderBundleSuccess() {
	payload := model.CommitPayload{
		SupplierID: "supplier-1",
		Lead:       model.EntityRef{Mode: constants.StepModeSelect, ID: "lead-1"},
		Project:    model.EntityRef{Mode: constants.StepModeSelect, ID: "project-1"},
	}
	s.store.On("CreateOrderBundle", payload).
		Return(commit.BundleResult{OrderID: "order-1", LeadID: "lead-1", ProjectID: "project-1"}, nil).Once()
	s.choices.On("InvalidateOrders", "supplier-1").Once()
	s.choices.On("InvalidateLeads", "supplier-1").Once()
	s.choices.On("InvalidateProjects", "lead-1").Once()

	orderID, svcErr := s.service.CreateOrderBundle(payload)

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), "order-1", orderID)
	s.choices.AssertExpectations(s.T())
}

func (s *CommitServiceTestSuite) TestCreateOrderBundleScopesProjectInvalidationToLead() {
	payload := model.CommitPayload{
		SupplierID: "supplier-1",
		Lead: model.EntityRef{Mode: constants.StepModeCreate,
			New: map[string]string{constants.FieldName: "Acme"}},
		Project: model.EntityRef{Mode: constants.StepModeCreate,
			New: map[string]string{constants.FieldTitle: "Kitchen"}},
	}
	s.store.On("CreateOrderBundle", payload).
		Return(commit.BundleResult{OrderID: "order-1", LeadID: "lead-new", ProjectID: "project-new"}, nil).Once()
	s.choices.On("InvalidateOrders", "supplier-1").Once()
	s.choices.On("InvalidateLeads", "supplier-1").Once()
	s.choices.On("InvalidateProjects", "lead-new").Once()

	_, svcErr := s.service.CreateOrderBundle(payload)

	assert.Nil(s.T(), svcErr)
	s.choices.AssertExpectations(s.T())
}

func (s *CommitServiceTestSuite) TestCreateOrderBundleRejectionCarriesBackendMessage() {
	payload := model.CommitPayload{SupplierID: "supplier-1"}
	s.store.On("CreateOrderBundle", payload).
		Return(commit.BundleResult{}, errors.New("failed to insert order: duplicate key")).Once()

	orderID, svcErr := s.service.CreateOrderBundle(payload)

	assert.Empty(s.T(), orderID)
	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorCommitRejected.Code, svcErr.Code)
	assert.Equal(s.T(), "failed to insert order: duplicate key", svcErr.ErrorDescription)
	s.choices.AssertNotCalled(s.T(), "InvalidateOrders", mock.Anything)
}
