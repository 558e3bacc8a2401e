/*
 *     Copyright 2025 The CNAI Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Root struct {
	// DataDir holds the snapshot files, defaulting to the working directory.
	DataDir string

	// OutputDir holds the rendered site artifacts (charts, report).
	OutputDir string

	// LogLevel is the logrus level name.
	LogLevel string
}

func NewRoot() *Root {
	return &Root{
		DataDir:   ".",
		OutputDir: ".",
		LogLevel:  "info",
	}
}

func (r *Root) Validate() error {
	if len(r.DataDir) == 0 {
		return fmt.Errorf("data directory is required")
	}

	if len(r.OutputDir) == 0 {
		return fmt.Errorf("output directory is required")
	}

	if _, err := logrus.ParseLevel(r.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", r.LogLevel)
	}

	return nil
}
