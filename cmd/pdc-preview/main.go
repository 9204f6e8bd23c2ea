// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// pdc-preview watches a directory of PDC files and pushes rendered
// previews to websocket clients whenever a file changes. Configured from
// the environment: PREVIEW_LISTEN_ADDR, PREVIEW_WATCH_DIR, PREVIEW_SCALE.
package main

import (
	"log"

	"github.com/pebble-dev/pdc-tools/preview"
)

func main() {
	cfg := preview.LoadConfig()
	service := preview.NewService(cfg)
	log.Printf("Watching %s, listening on %s.", cfg.WatchDir, cfg.ListenAddr)
	log.Fatal(service.ListenAndServe(cfg.ListenAddr))
}
