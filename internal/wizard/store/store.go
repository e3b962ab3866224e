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

// Package store persists wizard sessions between requests.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/renolink/orderflow/internal/system/database/provider"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/wizard/model"
)

const loggerComponentName = "WizardSessionStore"

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = errors.New("wizard session not found")

// SessionStoreInterface defines the persistence operations for wizard sessions.
type SessionStoreInterface interface {
	CreateSession(session *model.WizardSession) error
	GetSession(sessionID string) (*model.WizardSession, error)
	UpdateSession(session *model.WizardSession) error
	MarkSubmitting(sessionID string) (bool, error)
	ClearSubmitting(sessionID string) error
	DeleteSession(sessionID string) error
	DeleteExpiredSessions(olderThan time.Time) (int64, error)
}

// SessionStore is the implementation of SessionStoreInterface backed by the
// runtime database.
type SessionStore struct {
	DBProvider provider.DBProviderInterface
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() SessionStoreInterface {
	return &SessionStore{
		DBProvider: provider.GetDBProvider(),
	}
}

// CreateSession inserts a new wizard session.
func (s *SessionStore) CreateSession(session *model.WizardSession) error {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	row, err := toSessionRow(session)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(QueryCreateWizardSession, row.SessionID, row.SupplierID,
		row.CurrentStep, row.StepData, row.ItemData, row.Submitting, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetSession loads the wizard session with the given ID. ErrSessionNotFound is
// returned when no such session exists.
func (s *SessionStore) GetSession(sessionID string) (*model.WizardSession, error) {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetWizardSession, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSessionNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	raw := results[0]
	row := sessionRow{
		SessionID:   asString(raw["session_id"]),
		SupplierID:  asString(raw["supplier_id"]),
		CurrentStep: asInt(raw["current_step"]),
		StepData:    asString(raw["step_data"]),
		ItemData:    asString(raw["item_data"]),
		Submitting:  asBool(raw["submitting"]),
		CreatedAt:   asString(raw["created_at"]),
		UpdatedAt:   asString(raw["updated_at"]),
	}
	return toWizardSession(row)
}

// UpdateSession persists the mutable state of an existing wizard session.
func (s *SessionStore) UpdateSession(session *model.WizardSession) error {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	session.UpdatedAt = time.Now()
	row, err := toSessionRow(session)
	if err != nil {
		return err
	}

	rowsAffected, err := dbClient.Execute(QueryUpdateWizardSession, row.SessionID,
		row.CurrentStep, row.StepData, row.ItemData, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// MarkSubmitting claims the submission marker of the session. The marker is
// flipped with a conditional update, so at most one caller can hold it for a
// given session at a time. It returns false when the marker is already held.
func (s *SessionStore) MarkSubmitting(sessionID string) (bool, error) {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryMarkWizardSessionSubmitting, sessionID,
		time.Now().UTC().Format(timestampLayout))
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	return rowsAffected > 0, nil
}

// ClearSubmitting releases the submission marker of the session so a later
// submit can claim it again.
func (s *SessionStore) ClearSubmitting(sessionID string) error {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(QueryClearWizardSessionSubmitting, sessionID,
		time.Now().UTC().Format(timestampLayout)); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// DeleteSession removes the wizard session with the given ID. Deleting a
// session that does not exist is not an error.
func (s *SessionStore) DeleteSession(sessionID string) error {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteWizardSession, sessionID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Session not found for deletion", log.String(log.LoggerKeySessionID, sessionID))
	}
	return nil
}

// DeleteExpiredSessions purges sessions not touched since the given time and
// returns the number of sessions removed.
func (s *SessionStore) DeleteExpiredSessions(olderThan time.Time) (int64, error) {
	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteExpiredWizardSessions,
		olderThan.UTC().Format(timestampLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return rowsAffected, nil
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

// asInt coerces a scanned column value to an int.
func asInt(value interface{}) int {
	switch v := value.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// asBool coerces a scanned column value to a bool. Drivers without a native
// boolean type report integers.
func asBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}
