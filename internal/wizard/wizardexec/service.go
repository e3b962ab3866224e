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

// Package wizardexec exposes the wizard execution API of the order service.
package wizardexec

import (
	"errors"
	"time"

	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/system/log"
	sysutils "github.com/renolink/orderflow/internal/system/utils"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/engine"
	"github.com/renolink/orderflow/internal/wizard/lookup"
	"github.com/renolink/orderflow/internal/wizard/model"
	"github.com/renolink/orderflow/internal/wizard/store"
)

const serviceLoggerComponentName = "WizardExecService"

// WizardExecServiceInterface defines the execution of wizard actions.
type WizardExecServiceInterface interface {
	Execute(request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError)
	CleanupExpiredSessions(olderThan time.Time) (int64, error)
}

// WizardExecService is the implementation of WizardExecServiceInterface.
type WizardExecService struct {
	sessionStore store.SessionStoreInterface
	engine       engine.WizardEngineInterface
	choices      lookup.ChoiceServiceInterface
}

// NewWizardExecService creates a WizardExecService with the given collaborators.
func NewWizardExecService(sessionStore store.SessionStoreInterface,
	wizardEngine engine.WizardEngineInterface,
	choices lookup.ChoiceServiceInterface) WizardExecServiceInterface {
	return &WizardExecService{
		sessionStore: sessionStore,
		engine:       wizardEngine,
		choices:      choices,
	}
}

// Execute runs a single wizard action against a session and returns the
// resulting wizard state.
func (s *WizardExecService) Execute(request model.WizardRequest) (*model.WizardResponse,
	*serviceerror.ServiceError) {
	switch constants.WizardAction(request.Action) {
	case constants.ActionStart:
		return s.startSession(request)
	case constants.ActionUpdate:
		return s.withSession(request, s.updateSession)
	case constants.ActionNext:
		return s.withSession(request, s.advanceSession)
	case constants.ActionBack:
		return s.withSession(request, s.rewindSession)
	case constants.ActionSubmit:
		return s.withSession(request, s.submitSession)
	case constants.ActionCancel:
		return s.withSession(request, s.cancelSession)
	default:
		return nil, &constants.ErrorInvalidAction
	}
}

// CleanupExpiredSessions purges sessions that have not been touched since the
// given time.
func (s *WizardExecService) CleanupExpiredSessions(olderThan time.Time) (int64, error) {
	return s.sessionStore.DeleteExpiredSessions(olderThan)
}

// startSession creates a new session for the supplier and positions it at the
// first step.
func (s *WizardExecService) startSession(request model.WizardRequest) (*model.WizardResponse,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if request.SupplierID == "" {
		return nil, &constants.ErrorInvalidSupplierID
	}

	session := model.NewWizardSession(sysutils.GenerateUUID(), request.SupplierID)
	if err := s.sessionStore.CreateSession(session); err != nil {
		logger.Error("Failed to create wizard session", log.Error(err))
		return nil, &constants.ErrorUpdatingSessionInStore
	}

	logger.Debug("Wizard session started", log.String(log.LoggerKeySessionID, session.ID),
		log.String(log.LoggerKeySupplierID, session.SupplierID))
	return s.buildResponse(session, constants.SessionStatusIncomplete, ""), nil
}

// withSession loads the session named by the request and runs the action on it.
func (s *WizardExecService) withSession(request model.WizardRequest,
	action func(*model.WizardSession, model.WizardRequest) (*model.WizardResponse,
		*serviceerror.ServiceError)) (*model.WizardResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if request.SessionID == "" {
		return nil, &constants.ErrorInvalidSessionID
	}

	session, err := s.sessionStore.GetSession(request.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, &constants.ErrorInvalidSessionID
		}
		logger.Error("Failed to load wizard session", log.Error(err))
		return nil, &constants.ErrorRetrievingSessionFromStore
	}

	return action(session, request)
}

// updateSession merges the request's step input into the session without
// validating it. Entered values are kept even when invalid; validation runs
// only when the caller tries to advance or submit.
func (s *WizardExecService) updateSession(session *model.WizardSession,
	request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError) {
	stepIndex := session.CurrentStepIndex
	if request.StepIndex != nil {
		stepIndex = *request.StepIndex
	}
	step := session.Step(stepIndex)
	if step == nil {
		return nil, &constants.ErrorInvalidStepIndex
	}

	if request.Mode != "" {
		mode := constants.StepModeKind(request.Mode)
		if mode != constants.StepModeSelect && mode != constants.StepModeCreate {
			return nil, &constants.ErrorInvalidRequestFormat
		}
		session.SetStepMode(stepIndex, mode)
	}

	if request.ReferenceID != "" {
		step.ReferenceID = request.ReferenceID
	}

	for field, value := range request.Inputs {
		session.SetStepField(stepIndex, field, value)
	}

	if request.Items != nil {
		session.Items = request.Items
	}

	// A changed lead selection re-scopes the project choices; late lookup
	// results for the previous selection must not surface.
	if stepIndex == constants.StepIndexLead {
		s.choices.TrackProjectParent(session.ID, session.SelectedClientID())
	}

	if svcErr := s.persist(session); svcErr != nil {
		return nil, svcErr
	}
	return s.buildResponse(session, constants.SessionStatusIncomplete, ""), nil
}

// advanceSession validates the current step and moves forward. A failed
// validation is reported inline, not as a request error.
func (s *WizardExecService) advanceSession(session *model.WizardSession,
	request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError) {
	if svcErr := s.engine.Next(session); svcErr != nil {
		if svcErr.Code == constants.ErrorStepValidationFailed.Code {
			return s.buildResponse(session, constants.SessionStatusError, svcErr.ErrorDescription), nil
		}
		return nil, svcErr
	}

	if svcErr := s.persist(session); svcErr != nil {
		return nil, svcErr
	}
	return s.buildResponse(session, constants.SessionStatusIncomplete, ""), nil
}

// rewindSession moves one step back, or jumps directly to an earlier step
// when the request names one. Entered data is never discarded by going back.
func (s *WizardExecService) rewindSession(session *model.WizardSession,
	request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError) {
	if request.StepIndex != nil {
		if svcErr := s.engine.GoTo(session, *request.StepIndex); svcErr != nil {
			return nil, svcErr
		}
	} else {
		s.engine.Back(session)
	}

	if svcErr := s.persist(session); svcErr != nil {
		return nil, svcErr
	}
	return s.buildResponse(session, constants.SessionStatusIncomplete, ""), nil
}

// submitSession runs the terminal commit. On success the session is removed;
// on failure it is kept untouched so the caller can correct and retry.
//
// Every request works on its own deserialized copy of the session, so the
// in-flight guard has to live in the store: the submission marker is claimed
// with a conditional update there, and only the request holding the marker
// may reach the commit.
func (s *WizardExecService) submitSession(session *model.WizardSession,
	request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	claimed, err := s.sessionStore.MarkSubmitting(session.ID)
	if err != nil {
		logger.Error("Failed to claim the submission marker", log.Error(err))
		return nil, &constants.ErrorUpdatingSessionInStore
	}
	if !claimed {
		return nil, &constants.ErrorSubmissionInFlight
	}

	orderID, svcErr := s.engine.Submit(session)
	if svcErr != nil {
		s.releaseSubmitMarker(session.ID)
		if svcErr.Code == constants.ErrorStepValidationFailed.Code {
			return s.buildResponse(session, constants.SessionStatusError, svcErr.ErrorDescription), nil
		}
		return nil, svcErr
	}

	if err := s.sessionStore.DeleteSession(session.ID); err != nil {
		logger.Error("Failed to delete submitted wizard session", log.Error(err))
	}
	s.choices.ClearSession(session.ID)

	response := &model.WizardResponse{
		SessionID: session.ID,
		StepIndex: session.CurrentStepIndex,
		StepKind:  session.Steps[session.CurrentStepIndex].Kind,
		Status:    constants.SessionStatusComplete,
		OrderID:   orderID,
	}
	return response, nil
}

// cancelSession discards the session and everything entered in it.
func (s *WizardExecService) cancelSession(session *model.WizardSession,
	request model.WizardRequest) (*model.WizardResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	if err := s.sessionStore.DeleteSession(session.ID); err != nil {
		logger.Error("Failed to delete wizard session", log.Error(err))
		return nil, &constants.ErrorUpdatingSessionInStore
	}
	s.choices.ClearSession(session.ID)

	return &model.WizardResponse{
		SessionID: session.ID,
		StepIndex: session.CurrentStepIndex,
		StepKind:  session.Steps[session.CurrentStepIndex].Kind,
		Status:    constants.SessionStatusIncomplete,
		Message:   "The wizard session was discarded",
	}, nil
}

// releaseSubmitMarker frees the session for another submit attempt.
func (s *WizardExecService) releaseSubmitMarker(sessionID string) {
	if err := s.sessionStore.ClearSubmitting(sessionID); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName)).
			Error("Failed to release the submission marker", log.Error(err))
	}
}

// persist writes the session back to the store.
func (s *WizardExecService) persist(session *model.WizardSession) *serviceerror.ServiceError {
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName)).
			Error("Failed to persist wizard session", log.Error(err))
		return &constants.ErrorUpdatingSessionInStore
	}
	return nil
}

// buildResponse renders the session state together with the choice list of
// the current step. A failed lookup contributes a notice, never an error.
// Project choices pass through the stale guard; a list fetched for a
// superseded lead selection is dropped rather than shown.
func (s *WizardExecService) buildResponse(session *model.WizardSession,
	status constants.SessionStatus, message string) *model.WizardResponse {
	response := &model.WizardResponse{
		SessionID: session.ID,
		StepIndex: session.CurrentStepIndex,
		StepKind:  session.Steps[session.CurrentStepIndex].Kind,
		Status:    status,
		Message:   message,
	}

	switch session.CurrentStepIndex {
	case constants.StepIndexLead:
		choices, notice := s.choices.GetLeadChoices(session.SupplierID)
		response.Choices = choices
		if notice != "" {
			response.Notices = append(response.Notices, notice)
		}
	case constants.StepIndexProject:
		s.choices.RefreshProjectChoices(session.ID, session.SelectedClientID(),
			func(choices []model.Choice, notice string) {
				response.Choices = choices
				if notice != "" {
					response.Notices = append(response.Notices, notice)
				}
			})
	}

	return response
}
