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

package lookup

import (
	"github.com/renolink/orderflow/internal/system/database/model"
)

var (
	// QueryGetLeadChoices is the query to list the leads of a supplier.
	QueryGetLeadChoices = model.DBQuery{
		ID:    "ORQ-LOOKUP-01",
		Query: "SELECT LEAD_ID, NAME FROM LEAD WHERE SUPPLIER_ID = $1 ORDER BY NAME LIMIT $2",
	}

	// QueryGetProjectChoices is the query to list the projects of a client.
	QueryGetProjectChoices = model.DBQuery{
		ID:    "ORQ-LOOKUP-02",
		Query: "SELECT PROJECT_ID, TITLE FROM PROJECT WHERE CLIENT_ID = $1 ORDER BY TITLE LIMIT $2",
	}

	// QueryGetOrderSummaries is the query to list the recent orders of a supplier.
	QueryGetOrderSummaries = model.DBQuery{
		ID: "ORQ-LOOKUP-03",
		Query: "SELECT ORDER_ID, TITLE, ORDER_TOTAL FROM SERVICE_ORDER WHERE SUPPLIER_ID = $1 " +
			"ORDER BY CREATED_AT DESC LIMIT $2",
	}
)
