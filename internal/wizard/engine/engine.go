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

// Package engine drives step navigation and submission of a wizard session.
package engine

import (
	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/wizard/assemble"
	"github.com/renolink/orderflow/internal/wizard/commit"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
	"github.com/renolink/orderflow/internal/wizard/validate"
)

const loggerComponentName = "WizardEngine"

// WizardEngineInterface defines the navigation and submission operations of
// the order wizard.
type WizardEngineInterface interface {
	Next(session *model.WizardSession) *serviceerror.ServiceError
	Back(session *model.WizardSession)
	GoTo(session *model.WizardSession, stepIndex int) *serviceerror.ServiceError
	Submit(session *model.WizardSession) (string, *serviceerror.ServiceError)
	Reset(session *model.WizardSession)
}

// WizardEngine is the implementation of WizardEngineInterface.
type WizardEngine struct {
	commitService commit.CommitServiceInterface
}

// NewWizardEngine creates a WizardEngine delegating terminal commits to the
// given commit service.
func NewWizardEngine(commitService commit.CommitServiceInterface) WizardEngineInterface {
	return &WizardEngine{
		commitService: commitService,
	}
}

// Next advances the session to the following step. The current step must pass
// validation before the session moves; a failed validation leaves the session
// unchanged and carries the step message. Advancing from the final step is a
// no-op.
func (e *WizardEngine) Next(session *model.WizardSession) *serviceerror.ServiceError {
	if result := validate.ValidateStep(session.CurrentStepIndex, session); !result.OK {
		svcErr := constants.ErrorStepValidationFailed
		svcErr.ErrorDescription = result.Message
		return &svcErr
	}
	if session.CurrentStepIndex < constants.StepCount-1 {
		session.CurrentStepIndex++
	}
	return nil
}

// Back moves the session to the previous step. Moving back never validates
// and never discards entered data; the first step is the floor.
func (e *WizardEngine) Back(session *model.WizardSession) {
	if session.CurrentStepIndex > 0 {
		session.CurrentStepIndex--
	}
}

// GoTo jumps the session directly to an earlier step. Forward jumps must go
// through Next so every gate is passed in order.
func (e *WizardEngine) GoTo(session *model.WizardSession, stepIndex int) *serviceerror.ServiceError {
	if stepIndex < 0 || stepIndex >= constants.StepCount || stepIndex > session.CurrentStepIndex {
		return &constants.ErrorInvalidStepIndex
	}
	session.CurrentStepIndex = stepIndex
	return nil
}

// Submit re-validates the whole session, assembles the commit payload and
// delegates to the commit service. A submission already in flight is rejected
// without invoking the commit again. When the commit fails, the session keeps
// its step data and position so the caller can correct and retry.
func (e *WizardEngine) Submit(session *model.WizardSession) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if session.Submitting {
		return "", &constants.ErrorSubmissionInFlight
	}
	if !session.OnFinalStep() {
		return "", &constants.ErrorSubmitNotOnFinalStep
	}
	if result := validate.ValidateAll(session); !result.OK {
		svcErr := constants.ErrorStepValidationFailed
		svcErr.ErrorDescription = result.Message
		return "", &svcErr
	}

	session.Submitting = true
	payload := assemble.BuildPayload(session)
	orderID, svcErr := e.commitService.CreateOrderBundle(payload)
	session.Submitting = false

	if svcErr != nil {
		logger.Debug("Order submission failed", log.String(log.LoggerKeySessionID, session.ID),
			log.String("errorCode", svcErr.Code))
		return "", svcErr
	}

	session.Submitted = true
	logger.Debug("Order submitted", log.String(log.LoggerKeySessionID, session.ID),
		log.String("orderID", orderID))
	return orderID, nil
}

// Reset returns the session to its initial state. Resetting an already fresh
// session leaves it unchanged.
func (e *WizardEngine) Reset(session *model.WizardSession) {
	session.ResetAll()
}
