// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workbench

import (
	"log/slog"
)

// PaneGridOptionFunc configures a PaneGrid
type PaneGridOptionFunc func(*PaneGrid)

// WithToolFactory overrides how tools are built when a pane selects one
func WithToolFactory(factory ToolFactory) PaneGridOptionFunc {
	return func(g *PaneGrid) {
		g.factory = factory
	}
}

// WithLogger specifies the logger for the pane grid
func WithLogger(logger *slog.Logger) PaneGridOptionFunc {
	return func(g *PaneGrid) {
		g.logger = logger
	}
}
