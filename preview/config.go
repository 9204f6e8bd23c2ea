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

package preview

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	WatchDir   string
	Scale      int
}

// LoadConfig reads configuration from the environment, honoring a .env
// file when one exists.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
	}
	cfg := Config{
		ListenAddr: os.Getenv("PREVIEW_LISTEN_ADDR"),
		WatchDir:   os.Getenv("PREVIEW_WATCH_DIR"),
		Scale:      1,
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:8765"
	}
	if cfg.WatchDir == "" {
		cfg.WatchDir = "."
	}
	if scale := os.Getenv("PREVIEW_SCALE"); scale != "" {
		parsed, err := strconv.Atoi(scale)
		if err != nil || parsed < 1 || parsed > 32 {
			log.Printf("Ignoring invalid PREVIEW_SCALE %q", scale)
		} else {
			cfg.Scale = parsed
		}
	}
	return cfg
}
