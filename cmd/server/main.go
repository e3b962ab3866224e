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

// Package main bootstraps the Orderflow server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/renolink/orderflow/internal/system/config"
	"github.com/renolink/orderflow/internal/system/log"
	"github.com/renolink/orderflow/internal/wizard/wizardexec"
)

func main() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Server"))

	orderflowHome := flag.String("orderflowHome", ".", "Path to the Orderflow home directory")
	flag.Parse()

	configPath := filepath.Join(*orderflowHome, "repository", "conf", "deployment.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load deployment configuration", log.Error(err))
	}

	if err := config.InitializeOrderflowRuntime(*orderflowHome, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime configuration", log.Error(err))
	}

	mux := http.NewServeMux()
	service := wizardexec.Initialize(mux)
	stopCleaner := wizardexec.StartSessionCleaner(service)
	defer close(stopCleaner)

	address := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	if cfg.Server.HTTPOnly {
		logger.Info("Orderflow server starting", log.String("address", "http://"+address))
		if err := http.ListenAndServe(address, mux); err != nil {
			logger.Fatal("Server failed to start", log.Error(err))
		}
		return
	}

	certFile := filepath.Join(*orderflowHome, cfg.Security.CertFile)
	keyFile := filepath.Join(*orderflowHome, cfg.Security.KeyFile)
	if _, err := os.Stat(certFile); err != nil {
		logger.Fatal("Server certificate not found", log.String("path", certFile), log.Error(err))
	}

	logger.Info("Orderflow server starting", log.String("address", "https://"+address))
	if err := http.ListenAndServeTLS(address, certFile, keyFile, mux); err != nil {
		logger.Fatal("Server failed to start", log.Error(err))
	}
}
