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
	"github.com/renolink/orderflow/internal/system/log"
	sysutils "github.com/renolink/orderflow/internal/system/utils"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/lookup"
)

// orderListResponse is the payload of the supplier order listing.
type orderListResponse struct {
	Orders  []lookup.OrderSummary `json:"orders"`
	Notices []string              `json:"notices,omitempty"`
}

// orderListHandler serves the recent orders of a supplier.
type orderListHandler struct {
	choices lookup.ChoiceServiceInterface
}

// newOrderListHandler creates a handler backed by the given choice service.
func newOrderListHandler(choices lookup.ChoiceServiceInterface) *orderListHandler {
	return &orderListHandler{
		choices: choices,
	}
}

// handleListRequest returns the cached order summaries of the supplier named
// in the query string.
func (h *orderListHandler) handleListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OrderListHandler"))

	supplierID := sysutils.SanitizeString(r.URL.Query().Get("supplierId"))
	if supplierID == "" {
		svcErr := constants.ErrorInvalidSupplierID
		errResp := apierror.ErrorResponse{
			Code:        svcErr.Code,
			Message:     svcErr.Error,
			Description: svcErr.ErrorDescription,
		}
		w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(errResp); err != nil {
			logger.Error("Error encoding error response", log.Error(err))
		}
		return
	}

	summaries, notice := h.choices.GetOrderSummaries(supplierID)
	response := orderListResponse{Orders: summaries}
	if notice != "" {
		response.Notices = append(response.Notices, notice)
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error encoding order list response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
