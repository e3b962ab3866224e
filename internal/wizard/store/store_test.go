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

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
	"github.com/renolink/orderflow/tests/mocks/database/clientmock"
	"github.com/renolink/orderflow/tests/mocks/database/providermock"
)

type SessionStoreTestSuite struct {
	suite.Suite
	dbProvider *providermock.DBProviderInterfaceMock
	dbClient   *clientmock.DBClientInterfaceMock
	store      SessionStoreInterface
}

func TestSessionStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.dbProvider = new(providermock.DBProviderInterfaceMock)
	s.dbClient = new(clientmock.DBClientInterfaceMock)
	s.dbProvider.On("GetDBClient", "runtime").Return(s.dbClient, nil)
	s.store = &SessionStore{DBProvider: s.dbProvider}
}

func (s *SessionStoreTestSuite) TestCreateSession() {
	session := model.NewWizardSession("session-1", "supplier-1")
	s.dbClient.On("Execute", QueryCreateWizardSession, "session-1", "supplier-1", 0,
		mock.Anything, mock.Anything, false, mock.Anything, mock.Anything).
		Return(int64(1), nil).Once()

	err := s.store.CreateSession(session)

	assert.NoError(s.T(), err)
	s.dbClient.AssertExpectations(s.T())
}

func (s *SessionStoreTestSuite) TestGetSessionNotFound() {
	s.dbClient.On("Query", QueryGetWizardSession, "missing").Return(nil, nil).Once()

	session, err := s.store.GetSession("missing")

	assert.Nil(s.T(), session)
	assert.ErrorIs(s.T(), err, ErrSessionNotFound)
}

func (s *SessionStoreTestSuite) TestGetSessionQueryError() {
	s.dbClient.On("Query", QueryGetWizardSession, "session-1").
		Return(nil, errors.New("connection refused")).Once()

	session, err := s.store.GetSession("session-1")

	assert.Nil(s.T(), session)
	assert.Error(s.T(), err)
	assert.NotErrorIs(s.T(), err, ErrSessionNotFound)
}

func (s *SessionStoreTestSuite) TestGetSessionRoundTrip() {
	original := model.NewWizardSession("session-1", "supplier-1")
	original.CurrentStepIndex = 2
	original.LeadStep().ReferenceID = "lead-1"
	original.SetStepField(constants.StepIndexDetails, constants.FieldTitle, "Bathroom refresh")
	original.Items = []model.LineItem{{Name: "Tiles", Quantity: 4, UnitPrice: 12.5}}

	row, err := toSessionRow(original)
	assert.NoError(s.T(), err)

	s.dbClient.On("Query", QueryGetWizardSession, "session-1").Return([]map[string]interface{}{{
		"session_id":   row.SessionID,
		"supplier_id":  row.SupplierID,
		"current_step": int64(row.CurrentStep),
		"step_data":    row.StepData,
		"item_data":    row.ItemData,
		"submitting":   int64(0),
		"created_at":   row.CreatedAt,
		"updated_at":   row.UpdatedAt,
	}}, nil).Once()

	loaded, err := s.store.GetSession("session-1")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), original.ID, loaded.ID)
	assert.Equal(s.T(), original.SupplierID, loaded.SupplierID)
	assert.Equal(s.T(), original.CurrentStepIndex, loaded.CurrentStepIndex)
	assert.Equal(s.T(), original.Steps, loaded.Steps)
	assert.Equal(s.T(), original.Items, loaded.Items)
	assert.False(s.T(), loaded.Submitting)
}

func (s *SessionStoreTestSuite) TestUpdateSession() {
	session := model.NewWizardSession("session-1", "supplier-1")
	session.CurrentStepIndex = 1
	s.dbClient.On("Execute", QueryUpdateWizardSession, "session-1", 1,
		mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil).Once()

	err := s.store.UpdateSession(session)

	assert.NoError(s.T(), err)
	s.dbClient.AssertExpectations(s.T())
}

func (s *SessionStoreTestSuite) TestUpdateSessionNotFound() {
	session := model.NewWizardSession("missing", "supplier-1")
	s.dbClient.On("Execute", QueryUpdateWizardSession, "missing", 0,
		mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Once()

	err := s.store.UpdateSession(session)

	assert.ErrorIs(s.T(), err, ErrSessionNotFound)
}

func (s *SessionStoreTestSuite) TestMarkSubmittingClaimsMarker() {
	s.dbClient.On("Execute", QueryMarkWizardSessionSubmitting, "session-1", mock.Anything).
		Return(int64(1), nil).Once()

	claimed, err := s.store.MarkSubmitting("session-1")

	assert.NoError(s.T(), err)
	assert.True(s.T(), claimed)
}

func (s *SessionStoreTestSuite) TestMarkSubmittingAlreadyHeld() {
	s.dbClient.On("Execute", QueryMarkWizardSessionSubmitting, "session-1", mock.Anything).
		Return(int64(0), nil).Once()

	claimed, err := s.store.MarkSubmitting("session-1")

	assert.NoError(s.T(), err)
	assert.False(s.T(), claimed)
}

func (s *SessionStoreTestSuite) TestClearSubmitting() {
	s.dbClient.On("Execute", QueryClearWizardSessionSubmitting, "session-1", mock.Anything).
		Return(int64(1), nil).Once()

	err := s.store.ClearSubmitting("session-1")

	assert.NoError(s.T(), err)
}

func (s *SessionStoreTestSuite) TestDeleteSession() {
	s.dbClient.On("Execute", QueryDeleteWizardSession, "session-1").Return(int64(1), nil).Once()

	err := s.store.DeleteSession("session-1")

	assert.NoError(s.T(), err)
}

func (s *SessionStoreTestSuite) TestDeleteSessionMissingIsNotError() {
	s.dbClient.On("Execute", QueryDeleteWizardSession, "missing").Return(int64(0), nil).Once()

	err := s.store.DeleteSession("missing")

	assert.NoError(s.T(), err)
}

func (s *SessionStoreTestSuite) TestDeleteExpiredSessions() {
	s.dbClient.On("Execute", QueryDeleteExpiredWizardSessions, mock.Anything).
		Return(int64(3), nil).Once()

	purged, err := s.store.DeleteExpiredSessions(time.Now().Add(-24 * time.Hour))

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), purged)
}

func TestSessionRowRoundTrip(t *testing.T) {
	session := model.NewWizardSession("session-1", "supplier-1")
	session.CurrentStepIndex = 3
	session.SetStepMode(constants.StepIndexLead, constants.StepModeCreate)
	session.SetStepField(constants.StepIndexLead, constants.FieldName, "Acme")
	session.Items = []model.LineItem{
		{ProductID: "prod-1", Name: "Tiles", Quantity: 4, UnitPrice: 12.5},
	}

	row, err := toSessionRow(session)
	assert.NoError(t, err)

	restored, err := toWizardSession(row)
	assert.NoError(t, err)
	assert.Equal(t, session.ID, restored.ID)
	assert.Equal(t, session.CurrentStepIndex, restored.CurrentStepIndex)
	assert.Equal(t, session.Steps, restored.Steps)
	assert.Equal(t, session.Items, restored.Items)
}

func TestToWizardSessionRejectsMalformedStepData(t *testing.T) {
	_, err := toWizardSession(sessionRow{
		SessionID: "session-1",
		StepData:  "{not json",
		CreatedAt: time.Now().UTC().Format(timestampLayout),
		UpdatedAt: time.Now().UTC().Format(timestampLayout),
	})
	assert.Error(t, err)
}
