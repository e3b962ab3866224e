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
	"github.com/renolink/orderflow/internal/system/database/model"
)

var (
	// QueryInsertLead is the query to create a new lead within the commit transaction.
	QueryInsertLead = model.DBQuery{
		ID: "ORQ-COMMIT-01",
		Query: "INSERT INTO LEAD (LEAD_ID, SUPPLIER_ID, NAME, CONTACT_EMAIL, CONTACT_PHONE) " +
			"VALUES ($1, $2, $3, $4, $5)",
	}

	// QueryInsertProject is the query to create a new project within the commit transaction.
	QueryInsertProject = model.DBQuery{
		ID: "ORQ-COMMIT-02",
		Query: "INSERT INTO PROJECT (PROJECT_ID, CLIENT_ID, SUPPLIER_ID, TITLE) " +
			"VALUES ($1, $2, $3, $4)",
	}

	// QueryInsertOrder is the query to create the order within the commit transaction.
	QueryInsertOrder = model.DBQuery{
		ID: "ORQ-COMMIT-03",
		Query: "INSERT INTO SERVICE_ORDER (ORDER_ID, SUPPLIER_ID, PROJECT_ID, TITLE, " +
			"START_DATE, END_DATE, NOTES, ORDER_TOTAL) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// QueryInsertOrderItem is the query to create one order line within the commit transaction.
	QueryInsertOrderItem = model.DBQuery{
		ID: "ORQ-COMMIT-04",
		Query: "INSERT INTO ORDER_ITEM (ITEM_ID, ORDER_ID, PRODUCT_ID, NAME, QUANTITY, " +
			"UNIT_PRICE, LINE_TOTAL) VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}
)
