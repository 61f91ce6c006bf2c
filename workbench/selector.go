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
	"github.com/samber/lo"
)

// Selector occupies a pane that has no tool yet. The pane grid handles SelectTool
// messages for it
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) Name() string {
	return ToolKindSelector.String()
}

func (s *Selector) Update(msg Message) error {
	return unsupported(s, msg)
}

func (s *Selector) View() View {
	return View{
		Lines: lo.Map(SelectableTools, func(kind ToolKind, _ int) Line {
			return Line{Value: kind.String()}
		}),
	}
}
