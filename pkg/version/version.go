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

package version

import (
	"fmt"
	"runtime"
)

// Values are injected at build time via -ldflags.
var (
	// GitVersion is the semantic version of the build.
	GitVersion = "unknown"

	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"

	// BuildTime is the time the binary was built.
	BuildTime = "unknown"

	// Platform is the os/arch of the build.
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
