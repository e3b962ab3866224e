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

// Package commitmock provides mock implementations of the commit interfaces.
package commitmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/renolink/orderflow/internal/system/error/serviceerror"
	"github.com/renolink/orderflow/internal/wizard/commit"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// CommitServiceInterfaceMock is a mock implementation of CommitServiceInterface.
type CommitServiceInterfaceMock struct {
	mock.Mock
}

// CreateOrderBundle mocks the CreateOrderBundle method.
func (m *CommitServiceInterfaceMock) CreateOrderBundle(payload model.CommitPayload) (string,
	*serviceerror.ServiceError) {
	ret := m.Called(payload)

	var svcErr *serviceerror.ServiceError
	if ret.Get(1) != nil {
		svcErr = ret.Get(1).(*serviceerror.ServiceError)
	}
	return ret.String(0), svcErr
}

// OrderBundleStoreInterfaceMock is a mock implementation of OrderBundleStoreInterface.
type OrderBundleStoreInterfaceMock struct {
	mock.Mock
}

// CreateOrderBundle mocks the CreateOrderBundle method.
func (m *OrderBundleStoreInterfaceMock) CreateOrderBundle(payload model.CommitPayload) (commit.BundleResult, error) {
	ret := m.Called(payload)
	return ret.Get(0).(commit.BundleResult), ret.Error(1)
}
