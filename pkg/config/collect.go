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
	"time"
)

const (
	// defaultFetchLimit is the default number of records requested per
	// ranked view.
	defaultFetchLimit = 500

	// defaultKeepLimit is the default cap of each ranked list kept in the
	// snapshot.
	defaultKeepLimit = 20

	// defaultTopPerCategory is the default cap of the per-category lists.
	defaultTopPerCategory = 10
)

type Collect struct {
	BaseURL        string
	FetchLimit     int
	KeepLimit      int
	TopPerCategory int
	Timeout        time.Duration
}

func NewCollect() *Collect {
	return &Collect{
		BaseURL:        "",
		FetchLimit:     defaultFetchLimit,
		KeepLimit:      defaultKeepLimit,
		TopPerCategory: defaultTopPerCategory,
		Timeout:        30 * time.Second,
	}
}

func (c *Collect) Validate() error {
	if c.FetchLimit < 1 {
		return fmt.Errorf("invalid fetch limit: %d", c.FetchLimit)
	}

	if c.KeepLimit < 1 {
		return fmt.Errorf("invalid keep limit: %d", c.KeepLimit)
	}

	if c.TopPerCategory < 0 {
		return fmt.Errorf("invalid top-per-category limit: %d", c.TopPerCategory)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}

	return nil
}
