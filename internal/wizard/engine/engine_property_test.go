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

package engine

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// newCompleteSession returns a session whose every step passes validation so
// random navigation can reach any position.
func newCompleteSession() *model.WizardSession {
	session := model.NewWizardSession("session-prop", "supplier-prop")
	session.LeadStep().ReferenceID = "lead-1"
	session.ProjectStep().ReferenceID = "project-1"
	session.SetStepField(constants.StepIndexDetails, constants.FieldTitle, "Job")
	session.Items = []model.LineItem{{Name: "Tiles", Quantity: 1, UnitPrice: 10}}
	return session
}

func TestNavigationStaysWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	wizardEngine := NewWizardEngine(nil)

	properties.Property("step index stays within bounds under random navigation", prop.ForAll(
		func(actions []int) bool {
			session := newCompleteSession()
			for _, action := range actions {
				switch action % 3 {
				case 0:
					_ = wizardEngine.Next(session)
				case 1:
					wizardEngine.Back(session)
				case 2:
					_ = wizardEngine.GoTo(session, action%constants.StepCount)
				}
				if session.CurrentStepIndex < 0 || session.CurrentStepIndex >= constants.StepCount {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 32)),
	))

	properties.Property("moving back never changes step data", prop.ForAll(
		func(backs int) bool {
			session := newCompleteSession()
			session.CurrentStepIndex = constants.StepCount - 1
			before := session.Steps
			items := len(session.Items)
			for i := 0; i < backs; i++ {
				wizardEngine.Back(session)
			}
			return reflect.DeepEqual(session.Steps, before) && len(session.Items) == items &&
				session.CurrentStepIndex >= 0
		},
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
