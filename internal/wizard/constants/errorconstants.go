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

package constants

import (
	"github.com/renolink/orderflow/internal/system/error/serviceerror"
)

// Client errors for wizard operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorInvalidSupplierID is the error returned when the supplier ID is missing or unknown.
	ErrorInvalidSupplierID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1002",
		Error:            "Invalid supplier ID",
		ErrorDescription: "A valid supplier ID is required to start a wizard session",
	}
	// ErrorInvalidSessionID is the error returned when the wizard session is missing or unknown.
	ErrorInvalidSessionID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1003",
		Error:            "Invalid session ID",
		ErrorDescription: "The wizard session with the specified id does not exist",
	}
	// ErrorInvalidAction is the error returned when the requested action is not supported.
	ErrorInvalidAction = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1004",
		Error:            "Invalid action",
		ErrorDescription: "The requested wizard action is not supported",
	}
	// ErrorInvalidStepIndex is the error returned when a step index is out of bounds.
	ErrorInvalidStepIndex = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1005",
		Error:            "Invalid step index",
		ErrorDescription: "The step index is outside the bounds of the wizard",
	}
	// ErrorStepValidationFailed is the error returned when the current step fails validation.
	ErrorStepValidationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1006",
		Error:            "Step validation failed",
		ErrorDescription: "The current step is incomplete or contains invalid values",
	}
	// ErrorSubmissionInFlight is the error returned when a submission is already in progress.
	ErrorSubmissionInFlight = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1007",
		Error:            "Submission in progress",
		ErrorDescription: "The wizard session is already being submitted",
	}
	// ErrorSubmitNotOnFinalStep is the error returned when submit is requested before the final step.
	ErrorSubmitNotOnFinalStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1008",
		Error:            "Submit not allowed",
		ErrorDescription: "The order can only be submitted from the final wizard step",
	}
	// ErrorCommitRejected is the error returned when the order bundle commit is rejected.
	// The description carries the backend message verbatim.
	ErrorCommitRejected = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ORW-1009",
		Error:            "Order submission rejected",
		ErrorDescription: "The order bundle was rejected",
	}
)

// Server errors for wizard operations.
var (
	// ErrorInternalServerError is a generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORW-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the wizard request",
	}
	// ErrorRetrievingSessionFromStore is the error returned when loading a session fails.
	ErrorRetrievingSessionFromStore = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORW-5001",
		Error:            "Error retrieving wizard session",
		ErrorDescription: "An error occurred while retrieving the wizard session from the store",
	}
	// ErrorUpdatingSessionInStore is the error returned when persisting a session fails.
	ErrorUpdatingSessionInStore = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORW-5002",
		Error:            "Error updating wizard session",
		ErrorDescription: "An error occurred while persisting the wizard session to the store",
	}
	// ErrorCommittingOrderBundle is the error returned when the commit fails unexpectedly.
	ErrorCommittingOrderBundle = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ORW-5003",
		Error:            "Error committing order bundle",
		ErrorDescription: "An error occurred while committing the order bundle",
	}
)
