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

package wizardexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
	"github.com/renolink/orderflow/internal/wizard/store"
	"github.com/renolink/orderflow/tests/mocks/enginemock"
	"github.com/renolink/orderflow/tests/mocks/lookupmock"
	"github.com/renolink/orderflow/tests/mocks/storemock"
)

type WizardExecServiceTestSuite struct {
	suite.Suite
	sessionStore *storemock.SessionStoreInterfaceMock
	engine       *enginemock.WizardEngineInterfaceMock
	choices      *lookupmock.ChoiceServiceInterfaceMock
	service      WizardExecServiceInterface
}

func TestWizardExecServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WizardExecServiceTestSuite))
}

func (s *WizardExecServiceTestSuite) SetupTest() {
	s.sessionStore = new(storemock.SessionStoreInterfaceMock)
	s.engine = new(enginemock.WizardEngineInterfaceMock)
	s.choices = new(lookupmock.ChoiceServiceInterfaceMock)
	s.service = NewWizardExecService(s.sessionStore, s.engine, s.choices)
}

func (s *WizardExecServiceTestSuite) storedSession() *model.WizardSession {
	session := model.NewWizardSession("session-1", "supplier-1")
	s.sessionStore.On("GetSession", "session-1").Return(session, nil).Once()
	return session
}

func (s *WizardExecServiceTestSuite) TestStartCreatesSession() {
	s.sessionStore.On("CreateSession", mock.Anything).Return(nil).Once()
	s.choices.On("GetLeadChoices", "supplier-1").
		Return([]model.Choice{{ID: "lead-1", Label: "Acme"}}, "").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:     string(constants.ActionStart),
		SupplierID: "supplier-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.NotEmpty(s.T(), response.SessionID)
	assert.Equal(s.T(), 0, response.StepIndex)
	assert.Equal(s.T(), constants.StepKindLead, response.StepKind)
	assert.Equal(s.T(), constants.SessionStatusIncomplete, response.Status)
	assert.Len(s.T(), response.Choices, 1)
}

func (s *WizardExecServiceTestSuite) TestStartRequiresSupplier() {
	_, svcErr := s.service.Execute(model.WizardRequest{Action: string(constants.ActionStart)})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorInvalidSupplierID.Code, svcErr.Code)
}

func (s *WizardExecServiceTestSuite) TestUnknownActionRejected() {
	_, svcErr := s.service.Execute(model.WizardRequest{Action: "teleport"})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorInvalidAction.Code, svcErr.Code)
}

func (s *WizardExecServiceTestSuite) TestUnknownSessionRejected() {
	s.sessionStore.On("GetSession", "missing").Return(nil, store.ErrSessionNotFound).Once()

	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionNext),
		SessionID: "missing",
	})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorInvalidSessionID.Code, svcErr.Code)
}

func (s *WizardExecServiceTestSuite) TestUpdateMergesInputs() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepIndexDetails
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionUpdate),
		SessionID: "session-1",
		Inputs: map[string]string{
			constants.FieldTitle:     "Bathroom refresh",
			constants.FieldStartDate: "2026-05-01",
		},
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), "Bathroom refresh", session.DetailsStep().Fields[constants.FieldTitle])
	assert.Equal(s.T(), constants.SessionStatusIncomplete, response.Status)
}

func (s *WizardExecServiceTestSuite) TestUpdateLeadSelectionTracksProjectParent() {
	session := s.storedSession()
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()
	s.choices.On("TrackProjectParent", "session-1", "lead-1").Once()
	s.choices.On("GetLeadChoices", "supplier-1").Return([]model.Choice{}, "").Once()

	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:      string(constants.ActionUpdate),
		SessionID:   "session-1",
		ReferenceID: "lead-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), "lead-1", session.LeadStep().ReferenceID)
	s.choices.AssertExpectations(s.T())
}

func (s *WizardExecServiceTestSuite) TestUpdateRejectsUnknownMode() {
	s.storedSession()

	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionUpdate),
		SessionID: "session-1",
		Mode:      "duplicate",
	})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (s *WizardExecServiceTestSuite) TestUpdateRejectsStepIndexOutOfBounds() {
	s.storedSession()

	stepIndex := constants.StepCount
	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionUpdate),
		SessionID: "session-1",
		StepIndex: &stepIndex,
	})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorInvalidStepIndex.Code, svcErr.Code)
}

func (s *WizardExecServiceTestSuite) TestNextReportsValidationInline() {
	session := s.storedSession()
	validationErr := constants.ErrorStepValidationFailed
	validationErr.ErrorDescription = "Select a lead to continue"
	s.engine.On("Next", session).Return(&validationErr).Once()
	s.choices.On("GetLeadChoices", "supplier-1").Return([]model.Choice{}, "").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionNext),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.SessionStatusError, response.Status)
	assert.Equal(s.T(), "Select a lead to continue", response.Message)
	s.sessionStore.AssertNotCalled(s.T(), "UpdateSession", mock.Anything)
}

func (s *WizardExecServiceTestSuite) TestNextAdvancesAndPersists() {
	session := s.storedSession()
	s.engine.On("Next", session).Run(func(args mock.Arguments) {
		session.CurrentStepIndex = constants.StepIndexProject
	}).Return(nil).Once()
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()
	s.choices.On("RefreshProjectChoices", "session-1", "", mock.Anything).
		Run(func(args mock.Arguments) {
			deliver := args.Get(2).(func([]model.Choice, string))
			deliver([]model.Choice{{ID: "project-1", Label: "Kitchen"}}, "")
		}).Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionNext),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.StepIndexProject, response.StepIndex)
	assert.Equal(s.T(), constants.StepKindProject, response.StepKind)
	assert.Len(s.T(), response.Choices, 1)
}

func (s *WizardExecServiceTestSuite) TestProjectChoicesDroppedForSupersededSelection() {
	session := s.storedSession()
	s.engine.On("Next", session).Run(func(args mock.Arguments) {
		session.CurrentStepIndex = constants.StepIndexProject
	}).Return(nil).Once()
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()
	s.choices.On("RefreshProjectChoices", "session-1", "", mock.Anything).Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionNext),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Empty(s.T(), response.Choices)
	s.choices.AssertExpectations(s.T())
}

func (s *WizardExecServiceTestSuite) TestBackMovesOneStep() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepIndexDetails
	s.engine.On("Back", session).Run(func(args mock.Arguments) {
		session.CurrentStepIndex = constants.StepIndexProject
	}).Once()
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()
	s.choices.On("RefreshProjectChoices", "session-1", "", mock.Anything).Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionBack),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.StepIndexProject, response.StepIndex)
}

func (s *WizardExecServiceTestSuite) TestBackWithStepIndexJumps() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepIndexItems
	stepIndex := constants.StepIndexLead
	s.engine.On("GoTo", session, stepIndex).Run(func(args mock.Arguments) {
		session.CurrentStepIndex = stepIndex
	}).Return(nil).Once()
	s.sessionStore.On("UpdateSession", session).Return(nil).Once()
	s.choices.On("GetLeadChoices", "supplier-1").Return([]model.Choice{}, "").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionBack),
		SessionID: "session-1",
		StepIndex: &stepIndex,
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.StepIndexLead, response.StepIndex)
}

func (s *WizardExecServiceTestSuite) TestSubmitSuccessRemovesSession() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepCount - 1
	s.sessionStore.On("MarkSubmitting", "session-1").Return(true, nil).Once()
	s.engine.On("Submit", session).Return("order-1", nil).Once()
	s.sessionStore.On("DeleteSession", "session-1").Return(nil).Once()
	s.choices.On("ClearSession", "session-1").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionSubmit),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.SessionStatusComplete, response.Status)
	assert.Equal(s.T(), "order-1", response.OrderID)
	s.sessionStore.AssertExpectations(s.T())
}

func (s *WizardExecServiceTestSuite) TestSubmitRejectionKeepsSession() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepCount - 1
	s.sessionStore.On("MarkSubmitting", "session-1").Return(true, nil).Once()
	s.sessionStore.On("ClearSubmitting", "session-1").Return(nil).Once()
	rejection := constants.ErrorCommitRejected
	rejection.ErrorDescription = "duplicate order"
	s.engine.On("Submit", session).Return("", &rejection).Once()

	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionSubmit),
		SessionID: "session-1",
	})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), "duplicate order", svcErr.ErrorDescription)
	s.sessionStore.AssertNotCalled(s.T(), "DeleteSession", "session-1")
	s.sessionStore.AssertCalled(s.T(), "ClearSubmitting", "session-1")
}

func (s *WizardExecServiceTestSuite) TestSubmitWhileMarkerHeldRejectedWithoutCommit() {
	s.storedSession()
	s.sessionStore.On("MarkSubmitting", "session-1").Return(false, nil).Once()

	_, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionSubmit),
		SessionID: "session-1",
	})

	assert.NotNil(s.T(), svcErr)
	assert.Equal(s.T(), constants.ErrorSubmissionInFlight.Code, svcErr.Code)
	s.engine.AssertNotCalled(s.T(), "Submit", mock.Anything)
	s.sessionStore.AssertNotCalled(s.T(), "DeleteSession", mock.Anything)
}

func (s *WizardExecServiceTestSuite) TestSubmitValidationFailureReleasesMarker() {
	session := s.storedSession()
	session.CurrentStepIndex = constants.StepCount - 1
	s.sessionStore.On("MarkSubmitting", "session-1").Return(true, nil).Once()
	s.sessionStore.On("ClearSubmitting", "session-1").Return(nil).Once()
	validationErr := constants.ErrorStepValidationFailed
	validationErr.ErrorDescription = "Add at least one item to the order"
	s.engine.On("Submit", session).Return("", &validationErr).Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionSubmit),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.SessionStatusError, response.Status)
	assert.Equal(s.T(), "Add at least one item to the order", response.Message)
	s.sessionStore.AssertExpectations(s.T())
}

func (s *WizardExecServiceTestSuite) TestCancelDiscardsSession() {
	s.storedSession()
	s.sessionStore.On("DeleteSession", "session-1").Return(nil).Once()
	s.choices.On("ClearSession", "session-1").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:    string(constants.ActionCancel),
		SessionID: "session-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), "The wizard session was discarded", response.Message)
	s.sessionStore.AssertExpectations(s.T())
}

func (s *WizardExecServiceTestSuite) TestLookupNoticeSurfacesInResponse() {
	s.sessionStore.On("CreateSession", mock.Anything).Return(nil).Once()
	s.choices.On("GetLeadChoices", "supplier-1").
		Return([]model.Choice{}, "Choices could not be loaded; try again or create a new entry").Once()

	response, svcErr := s.service.Execute(model.WizardRequest{
		Action:     string(constants.ActionStart),
		SupplierID: "supplier-1",
	})

	assert.Nil(s.T(), svcErr)
	assert.Equal(s.T(), constants.SessionStatusIncomplete, response.Status)
	assert.Contains(s.T(), response.Notices,
		"Choices could not be loaded; try again or create a new entry")
}
