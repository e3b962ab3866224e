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

// Package constants defines the constants used across the wizard module.
package constants

// StepKind identifies one of the fixed wizard steps.
type StepKind string

const (
	// StepKindLead is the lead selection or creation step.
	StepKindLead StepKind = "lead"
	// StepKindProject is the project selection or creation step.
	StepKindProject StepKind = "project"
	// StepKindDetails is the order details step.
	StepKindDetails StepKind = "details"
	// StepKindItems is the line items step.
	StepKindItems StepKind = "items"
)

// Fixed step positions within a wizard session.
const (
	// StepIndexLead is the position of the lead step.
	StepIndexLead = 0
	// StepIndexProject is the position of the project step.
	StepIndexProject = 1
	// StepIndexDetails is the position of the order details step.
	StepIndexDetails = 2
	// StepIndexItems is the position of the line items step.
	StepIndexItems = 3
	// StepCount is the total number of wizard steps.
	StepCount = 4
)

// StepModeKind distinguishes selecting an existing entity from creating a new one.
type StepModeKind string

const (
	// StepModeSelect references an existing entity by ID.
	StepModeSelect StepModeKind = "select"
	// StepModeCreate carries the fields of a new entity.
	StepModeCreate StepModeKind = "create"
)

// SessionStatus represents the status of a wizard session returned to the caller.
type SessionStatus string

const (
	// SessionStatusIncomplete indicates the wizard requires further input.
	SessionStatusIncomplete SessionStatus = "incomplete"
	// SessionStatusComplete indicates the order bundle was committed.
	SessionStatusComplete SessionStatus = "complete"
	// SessionStatusError indicates the last action failed.
	SessionStatusError SessionStatus = "error"
)

// WizardAction identifies the operation requested against a wizard session.
type WizardAction string

const (
	// ActionStart creates a new wizard session.
	ActionStart WizardAction = "start"
	// ActionUpdate merges step input without validation.
	ActionUpdate WizardAction = "update"
	// ActionNext validates the current step and advances.
	ActionNext WizardAction = "next"
	// ActionBack moves to the previous step without validation.
	ActionBack WizardAction = "back"
	// ActionSubmit validates all steps and commits the order bundle.
	ActionSubmit WizardAction = "submit"
	// ActionCancel discards the wizard session.
	ActionCancel WizardAction = "cancel"
)

// DateLayout is the wire format for the order start and end dates.
const DateLayout = "2006-01-02"

// Cache names for the choice and order listing caches.
const (
	// CacheNameSupplierLeads is the cache of lead choices per supplier.
	CacheNameSupplierLeads = "supplier-leads"
	// CacheNameSupplierProjects is the cache of project choices per client.
	CacheNameSupplierProjects = "supplier-projects"
	// CacheNameSupplierOrders is the cache of order summaries per supplier.
	CacheNameSupplierOrders = "supplier-orders"
)

// Step field names used by the details step.
const (
	// FieldTitle is the order title field.
	FieldTitle = "title"
	// FieldStartDate is the order start date field.
	FieldStartDate = "startDate"
	// FieldEndDate is the order end date field.
	FieldEndDate = "endDate"
	// FieldNotes is the free-form notes field.
	FieldNotes = "notes"
	// FieldName is the name field of a new lead.
	FieldName = "name"
)
