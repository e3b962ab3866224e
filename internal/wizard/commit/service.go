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

package commit

import (
	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/lookup"
	"github.com/renolink/orderflow/internal/wizard/model"
)

const serviceLoggerComponentName = "CommitService"

// CommitServiceInterface defines the terminal commit of an assembled order bundle.
type CommitServiceInterface interface {
	CreateOrderBundle(payload model.CommitPayload) (string, *serviceerror.ServiceError)
}

// CommitService is the implementation of CommitServiceInterface.
type CommitService struct {
	store   OrderBundleStoreInterface
	choices lookup.ChoiceServiceInterface
}

// NewCommitService creates a CommitService backed by the given bundle store.
// The choice service may be nil when no caches need invalidation.
func NewCommitService(store OrderBundleStoreInterface,
	choices lookup.ChoiceServiceInterface) CommitServiceInterface {
	return &CommitService{
		store:   store,
		choices: choices,
	}
}

// CreateOrderBundle commits the payload and returns the created order ID.
// A rejected commit surfaces the backend message verbatim in the error
// description. The caches holding choice lists affected by the commit are
// invalidated on success.
func (s *CommitService) CreateOrderBundle(payload model.CommitPayload) (string,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	result, err := s.store.CreateOrderBundle(payload)
	if err != nil {
		logger.Error("Order bundle commit rejected",
			log.String(log.LoggerKeySupplierID, payload.SupplierID), log.Error(err))
		svcErr := constants.ErrorCommitRejected
		svcErr.ErrorDescription = err.Error()
		return "", &svcErr
	}

	s.invalidateChoices(payload, result)

	logger.Info("Order bundle committed", log.String("orderID", result.OrderID),
		log.String(log.LoggerKeySupplierID, payload.SupplierID))
	return result.OrderID, nil
}

// invalidateChoices drops every cached choice list the commit touches: the
// supplier's order summaries and lead choices, and the project choices of the
// lead the order was committed against.
func (s *CommitService) invalidateChoices(payload model.CommitPayload, result BundleResult) {
	if s.choices == nil {
		return
	}
	s.choices.InvalidateOrders(payload.SupplierID)
	s.choices.InvalidateLeads(payload.SupplierID)
	s.choices.InvalidateProjects(result.LeadID)
}
