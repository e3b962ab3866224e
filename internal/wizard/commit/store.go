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

// Package commit persists the assembled order bundle as a single transaction.
package commit

import (
	"database/sql"
	"fmt"

	"github.com/renolink/orderflow/internal/system/database/provider"
	"github.com/renolink/orderflow/internal/system/log"
	sysutils "github.com/renolink/orderflow/internal/system/utils"
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

const storeLoggerComponentName = "OrderBundleStore"

// txExecutor is the subset of the transaction used by the bundle inserts.
type txExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// BundleResult carries the identifiers created or referenced by a committed bundle.
type BundleResult struct {
	OrderID   string
	LeadID    string
	ProjectID string
}

// OrderBundleStoreInterface defines the transactional persistence of an order bundle.
type OrderBundleStoreInterface interface {
	CreateOrderBundle(payload model.CommitPayload) (BundleResult, error)
}

// OrderBundleStore is the implementation of OrderBundleStoreInterface.
type OrderBundleStore struct {
	DBProvider provider.DBProviderInterface
}

// NewOrderBundleStore creates a new OrderBundleStore.
func NewOrderBundleStore() OrderBundleStoreInterface {
	return &OrderBundleStore{
		DBProvider: provider.GetDBProvider(),
	}
}

// CreateOrderBundle persists the lead, project, order and items of the payload
// in one database transaction. Either the whole bundle is committed or nothing is.
func (s *OrderBundleStore) CreateOrderBundle(payload model.CommitPayload) (BundleResult, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		return BundleResult{}, fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return BundleResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := s.insertBundle(tx, payload)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
		}
		return BundleResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return BundleResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("Order bundle committed", log.String("orderID", result.OrderID),
		log.String(log.LoggerKeySupplierID, payload.SupplierID))
	return result, nil
}

// insertBundle runs the individual inserts of the bundle within the transaction.
func (s *OrderBundleStore) insertBundle(tx txExecutor, payload model.CommitPayload) (BundleResult, error) {
	leadID, err := s.resolveLead(tx, payload)
	if err != nil {
		return BundleResult{}, err
	}

	projectID, err := s.resolveProject(tx, payload, leadID)
	if err != nil {
		return BundleResult{}, err
	}

	orderID := sysutils.GenerateUUID()
	_, err = tx.Exec(QueryInsertOrder.Query, orderID, payload.SupplierID, projectID,
		payload.Title, nullable(payload.StartDate), nullable(payload.EndDate),
		nullable(payload.Notes), payload.OrderTotal)
	if err != nil {
		return BundleResult{}, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range payload.Items {
		itemID := sysutils.GenerateUUID()
		_, err = tx.Exec(QueryInsertOrderItem.Query, itemID, orderID, nullable(item.ProductID),
			item.Name, item.Quantity, item.UnitPrice, item.LineTotal)
		if err != nil {
			return BundleResult{}, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return BundleResult{OrderID: orderID, LeadID: leadID, ProjectID: projectID}, nil
}

// resolveLead returns the referenced lead ID or inserts a new lead.
func (s *OrderBundleStore) resolveLead(tx txExecutor, payload model.CommitPayload) (string, error) {
	switch payload.Lead.Mode {
	case constants.StepModeSelect:
		if payload.Lead.ID == "" {
			return "", fmt.Errorf("lead reference is empty")
		}
		return payload.Lead.ID, nil
	case constants.StepModeCreate:
		leadID := sysutils.GenerateUUID()
		_, err := tx.Exec(QueryInsertLead.Query, leadID, payload.SupplierID,
			payload.Lead.New[constants.FieldName], nullable(payload.Lead.New["email"]),
			nullable(payload.Lead.New["phone"]))
		if err != nil {
			return "", fmt.Errorf("failed to insert lead: %w", err)
		}
		return leadID, nil
	default:
		return "", fmt.Errorf("unsupported lead mode: %s", payload.Lead.Mode)
	}
}

// resolveProject returns the referenced project ID or inserts a new project
// scoped to the resolved lead.
func (s *OrderBundleStore) resolveProject(tx txExecutor, payload model.CommitPayload,
	leadID string) (string, error) {
	switch payload.Project.Mode {
	case constants.StepModeSelect:
		if payload.Project.ID == "" {
			return "", fmt.Errorf("project reference is empty")
		}
		return payload.Project.ID, nil
	case constants.StepModeCreate:
		projectID := sysutils.GenerateUUID()
		_, err := tx.Exec(QueryInsertProject.Query, projectID, leadID, payload.SupplierID,
			payload.Project.New[constants.FieldTitle])
		if err != nil {
			return "", fmt.Errorf("failed to insert project: %w", err)
		}
		return projectID, nil
	default:
		return "", fmt.Errorf("unsupported project mode: %s", payload.Project.Mode)
	}
}

// nullable converts an empty string to nil for optional columns.
func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
