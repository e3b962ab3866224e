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

package store

import (
	"github.com/renolink/orderflow/internal/system/database/model"
)

var (
	// QueryCreateWizardSession is the query to insert a new wizard session.
	QueryCreateWizardSession = model.DBQuery{
		ID: "ORQ-SESSION-01",
		Query: "INSERT INTO WIZARD_SESSION (SESSION_ID, SUPPLIER_ID, CURRENT_STEP, STEP_DATA, " +
			"ITEM_DATA, SUBMITTING, CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// QueryGetWizardSession is the query to load a wizard session by its ID.
	QueryGetWizardSession = model.DBQuery{
		ID: "ORQ-SESSION-02",
		Query: "SELECT SESSION_ID, SUPPLIER_ID, CURRENT_STEP, STEP_DATA, ITEM_DATA, SUBMITTING, " +
			"CREATED_AT, UPDATED_AT FROM WIZARD_SESSION WHERE SESSION_ID = $1",
	}

	// QueryUpdateWizardSession is the query to persist a changed wizard session.
	// SUBMITTING is not part of the update; the submission marker is written
	// only by the claim and release queries below.
	QueryUpdateWizardSession = model.DBQuery{
		ID: "ORQ-SESSION-03",
		Query: "UPDATE WIZARD_SESSION SET CURRENT_STEP = $2, STEP_DATA = $3, ITEM_DATA = $4, " +
			"UPDATED_AT = $5 WHERE SESSION_ID = $1",
	}

	// QueryDeleteWizardSession is the query to remove a wizard session.
	QueryDeleteWizardSession = model.DBQuery{
		ID:    "ORQ-SESSION-04",
		Query: "DELETE FROM WIZARD_SESSION WHERE SESSION_ID = $1",
	}

	// QueryDeleteExpiredWizardSessions is the query to purge abandoned sessions.
	QueryDeleteExpiredWizardSessions = model.DBQuery{
		ID:    "ORQ-SESSION-05",
		Query: "DELETE FROM WIZARD_SESSION WHERE UPDATED_AT < $1",
	}

	// QueryMarkWizardSessionSubmitting claims the submission marker of a
	// session. The conditional predicate flips the marker only when it is
	// unset, so at most one claim per session succeeds.
	QueryMarkWizardSessionSubmitting = model.DBQuery{
		ID: "ORQ-SESSION-06",
		Query: "UPDATE WIZARD_SESSION SET SUBMITTING = TRUE, UPDATED_AT = $2 " +
			"WHERE SESSION_ID = $1 AND SUBMITTING = FALSE",
		SQLiteQuery: "UPDATE WIZARD_SESSION SET SUBMITTING = 1, UPDATED_AT = $2 " +
			"WHERE SESSION_ID = $1 AND SUBMITTING = 0",
	}

	// QueryClearWizardSessionSubmitting releases the submission marker of a
	// session after a failed submit.
	QueryClearWizardSessionSubmitting = model.DBQuery{
		ID:          "ORQ-SESSION-07",
		Query:       "UPDATE WIZARD_SESSION SET SUBMITTING = FALSE, UPDATED_AT = $2 WHERE SESSION_ID = $1",
		SQLiteQuery: "UPDATE WIZARD_SESSION SET SUBMITTING = 0, UPDATED_AT = $2 WHERE SESSION_ID = $1",
	}
)
