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
	"encoding/json"
	"net/http"

	sysconst "github.com/renolink/orderflow/internal/system/constants"
	"github.com/renolink/orderflow/internal/system/error/apierror"
	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/system/log"
	sysutils "github.com/renolink/orderflow/internal/system/utils"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

const handlerLoggerComponentName = "WizardExecHandler"

// wizardExecHandler handles the HTTP requests of the wizard execution API.
type wizardExecHandler struct {
	service WizardExecServiceInterface
}

// newWizardExecHandler creates a handler backed by the given service.
func newWizardExecHandler(service WizardExecServiceInterface) *wizardExecHandler {
	return &wizardExecHandler{
		service: service,
	}
}

// handleExecuteRequest runs one wizard action and writes the resulting state.
func (h *wizardExecHandler) handleExecuteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[model.WizardRequest](r)
	if err != nil {
		h.writeErrorResponse(w, &constants.ErrorInvalidRequestFormat)
		return
	}
	sanitizeRequest(request)

	response, svcErr := h.service.Execute(*request)
	if svcErr != nil {
		h.writeErrorResponse(w, svcErr)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error encoding wizard response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// writeErrorResponse maps a service error to the API error shape.
func (h *wizardExecHandler) writeErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// sanitizeRequest strips whitespace and control characters from the textual
// request fields. Item names carry user-entered text and are sanitized too.
func sanitizeRequest(request *model.WizardRequest) {
	request.SessionID = sysutils.SanitizeString(request.SessionID)
	request.SupplierID = sysutils.SanitizeString(request.SupplierID)
	request.Action = sysutils.SanitizeString(request.Action)
	request.Mode = sysutils.SanitizeString(request.Mode)
	request.ReferenceID = sysutils.SanitizeString(request.ReferenceID)
	request.Inputs = sysutils.SanitizeStringMap(request.Inputs)
	for i := range request.Items {
		request.Items[i].Name = sysutils.SanitizeString(request.Items[i].Name)
		request.Items[i].ProductID = sysutils.SanitizeString(request.Items[i].ProductID)
	}
}
