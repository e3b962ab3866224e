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

package wizardexec

import (
	"net/http"
	"time"

	"github.com/renolink/orderflow/internal/system/config"
	"github.com/renolink/orderflow/internal/system/database/provider"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/system/middleware"
	"github.com/renolink/orderflow/internal/wizard/commit"
	"github.com/renolink/orderflow/internal/wizard/engine"
	"github.com/renolink/orderflow/internal/wizard/lookup"
	"github.com/renolink/orderflow/internal/wizard/store"
)

// defaultSessionTTL is used when no session TTL is configured.
const defaultSessionTTL = 24 * time.Hour

// Initialize wires the wizard execution service and registers its routes on
// the given mux. It returns the service so callers can run housekeeping.
func Initialize(mux *http.ServeMux) WizardExecServiceInterface {
	cfg := config.GetOrderflowRuntime().Config

	choiceService := lookup.NewChoiceService(provider.GetDBProvider(), cfg.Wizard.LookupLimit)
	commitService := commit.NewCommitService(commit.NewOrderBundleStore(), choiceService)
	wizardEngine := engine.NewWizardEngine(commitService)
	service := NewWizardExecService(store.NewSessionStore(), wizardEngine, choiceService)
	handler := newWizardExecHandler(service)
	ordersHandler := newOrderListHandler(choiceService)

	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, OPTIONS",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /wizard/execute", handler.handleExecuteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /wizard/orders", ordersHandler.handleListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizard/execute",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizard/orders",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	return service
}

// StartSessionCleaner periodically purges wizard sessions that outlived the
// configured TTL. Closing the returned channel stops the cleaner.
func StartSessionCleaner(service WizardExecServiceInterface) chan struct{} {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionCleaner"))

	ttl := defaultSessionTTL
	if configured := config.GetOrderflowRuntime().Config.Wizard.SessionTTL; configured > 0 {
		ttl = time.Duration(configured) * time.Second
	}

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				purged, err := service.CleanupExpiredSessions(time.Now().Add(-ttl))
				if err != nil {
					logger.Error("Failed to purge expired wizard sessions", log.Error(err))
					continue
				}
				if purged > 0 {
					logger.Debug("Purged expired wizard sessions", log.Int("count", int(purged)))
				}
			}
		}
	}()
	return stop
}
