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

// Package lookup fetches the choice sets offered by the wizard steps.
package lookup

import (
	"fmt"

	"github.com/renolink/orderflow/internal/system/cache"
	dbmodel "github.com/renolink/orderflow/internal/system/database/model"
	"github.com/renolink/orderflow/internal/system/database/provider"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

const loggerComponentName = "ChoiceService"

// lookupFailedNotice is shown to the caller when a choice list cannot be loaded.
// Lookup failures are non-blocking; the wizard continues with an empty list.
const lookupFailedNotice = "Choices could not be loaded; try again or create a new entry"

// OrderSummary is one entry of the cached supplier order listing.
type OrderSummary struct {
	OrderID    string  `json:"orderId"`
	Title      string  `json:"title"`
	OrderTotal float64 `json:"orderTotal"`
}

// ChoiceServiceInterface provides the dependent choice sets for wizard steps
// and the invalidation hooks consumed after a successful commit.
type ChoiceServiceInterface interface {
	GetLeadChoices(supplierID string) ([]model.Choice, string)
	GetProjectChoices(clientID string) ([]model.Choice, string)
	RefreshProjectChoices(sessionID, clientID string, deliver func(choices []model.Choice, notice string))
	TrackProjectParent(sessionID, clientID string)
	ClearSession(sessionID string)
	GetOrderSummaries(supplierID string) ([]OrderSummary, string)
	InvalidateLeads(supplierID string)
	InvalidateProjects(clientID string)
	InvalidateOrders(supplierID string)
}

// ChoiceService is the database-backed implementation of ChoiceServiceInterface.
type ChoiceService struct {
	DBProvider   provider.DBProviderInterface
	leadCache    cache.CacheInterface[[]model.Choice]
	projectCache cache.CacheInterface[[]model.Choice]
	orderCache   cache.CacheInterface[[]OrderSummary]
	guard        *StaleGuard
	limit        int
}

// NewChoiceService creates a ChoiceService with read-through caches configured
// from the deployment configuration.
func NewChoiceService(dbProvider provider.DBProviderInterface, limit int) ChoiceServiceInterface {
	if limit <= 0 {
		limit = 50
	}
	return &ChoiceService{
		DBProvider:   dbProvider,
		leadCache:    cache.NewCache[[]model.Choice](constants.CacheNameSupplierLeads),
		projectCache: cache.NewCache[[]model.Choice](constants.CacheNameSupplierProjects),
		orderCache:   cache.NewCache[[]OrderSummary](constants.CacheNameSupplierOrders),
		guard:        NewStaleGuard(),
		limit:        limit,
	}
}

// GetLeadChoices returns the lead choices of a supplier. On lookup failure it
// returns an empty list and a non-blocking notice instead of an error.
func (s *ChoiceService) GetLeadChoices(supplierID string) ([]model.Choice, string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cacheKey := cache.CacheKey{Key: supplierID}
	if choices, found := s.leadCache.Get(cacheKey); found {
		return choices, ""
	}

	choices, err := s.queryChoices(QueryGetLeadChoices, supplierID, "lead_id", "name")
	if err != nil {
		logger.Error("Failed to fetch lead choices", log.String(log.LoggerKeySupplierID, supplierID),
			log.Error(err))
		return []model.Choice{}, lookupFailedNotice
	}

	if err := s.leadCache.Set(cacheKey, choices); err != nil {
		logger.Error("Failed to cache lead choices", log.Error(err))
	}
	return choices, ""
}

// GetProjectChoices returns the project choices of a client. An empty client ID
// yields an empty list so cleared selections never show stale entries.
func (s *ChoiceService) GetProjectChoices(clientID string) ([]model.Choice, string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if clientID == "" {
		return []model.Choice{}, ""
	}

	cacheKey := cache.CacheKey{Key: clientID}
	if choices, found := s.projectCache.Get(cacheKey); found {
		return choices, ""
	}

	choices, err := s.queryChoices(QueryGetProjectChoices, clientID, "project_id", "title")
	if err != nil {
		logger.Error("Failed to fetch project choices", log.String("clientId", clientID), log.Error(err))
		return []model.Choice{}, lookupFailedNotice
	}

	if err := s.projectCache.Set(cacheKey, choices); err != nil {
		logger.Error("Failed to cache project choices", log.Error(err))
	}
	return choices, ""
}

// TrackProjectParent records the client the session's project choices are
// scoped to. Responses for previously tracked clients are dropped.
func (s *ChoiceService) TrackProjectParent(sessionID, clientID string) {
	s.guard.Track(sessionID, clientID)
}

// RefreshProjectChoices fetches the project choices for the given client and
// delivers them only if the client is still the session's tracked selection.
// A late response for a superseded selection is discarded.
func (s *ChoiceService) RefreshProjectChoices(sessionID, clientID string,
	deliver func(choices []model.Choice, notice string)) {
	choices, notice := s.GetProjectChoices(clientID)
	if !s.guard.IsCurrent(sessionID, clientID) {
		return
	}
	deliver(choices, notice)
}

// ClearSession drops the tracked selection for a session. Pending lookups for
// the session deliver nothing once cleared.
func (s *ChoiceService) ClearSession(sessionID string) {
	s.guard.Clear(sessionID)
}

// GetOrderSummaries returns the recent orders of a supplier from the
// read-through order cache.
func (s *ChoiceService) GetOrderSummaries(supplierID string) ([]OrderSummary, string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cacheKey := cache.CacheKey{Key: supplierID}
	if summaries, found := s.orderCache.Get(cacheKey); found {
		return summaries, ""
	}

	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return []OrderSummary{}, lookupFailedNotice
	}

	results, err := dbClient.Query(QueryGetOrderSummaries, supplierID, s.limit)
	if err != nil {
		logger.Error("Failed to fetch order summaries",
			log.String(log.LoggerKeySupplierID, supplierID), log.Error(err))
		return []OrderSummary{}, lookupFailedNotice
	}

	summaries := make([]OrderSummary, 0, len(results))
	for _, row := range results {
		summaries = append(summaries, OrderSummary{
			OrderID:    asString(row["order_id"]),
			Title:      asString(row["title"]),
			OrderTotal: asFloat(row["order_total"]),
		})
	}

	if err := s.orderCache.Set(cacheKey, summaries); err != nil {
		logger.Error("Failed to cache order summaries", log.Error(err))
	}
	return summaries, ""
}

// InvalidateLeads removes the cached lead choices of a supplier.
func (s *ChoiceService) InvalidateLeads(supplierID string) {
	if err := s.leadCache.Delete(cache.CacheKey{Key: supplierID}); err != nil {
		log.GetLogger().Error("Failed to invalidate lead choices", log.Error(err))
	}
}

// InvalidateProjects removes the cached project choices of a client.
func (s *ChoiceService) InvalidateProjects(clientID string) {
	if clientID == "" {
		return
	}
	if err := s.projectCache.Delete(cache.CacheKey{Key: clientID}); err != nil {
		log.GetLogger().Error("Failed to invalidate project choices", log.Error(err))
	}
}

// InvalidateOrders removes the cached order summaries of a supplier.
func (s *ChoiceService) InvalidateOrders(supplierID string) {
	if err := s.orderCache.Delete(cache.CacheKey{Key: supplierID}); err != nil {
		log.GetLogger().Error("Failed to invalidate order summaries", log.Error(err))
	}
}

// queryChoices runs a two-column id/label query against the identity database.
func (s *ChoiceService) queryChoices(query dbmodel.DBQuery, parentID, idColumn,
	labelColumn string) ([]model.Choice, error) {
	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, parentID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	choices := make([]model.Choice, 0, len(results))
	for _, row := range results {
		choices = append(choices, model.Choice{
			ID:    asString(row[idColumn]),
			Label: asString(row[labelColumn]),
		})
	}
	return choices, nil
}

// asString coerces a scanned column value to a string.
func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// asFloat coerces a scanned column value to a float64.
func asFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}
