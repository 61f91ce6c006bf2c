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

// Package workbench implements the headless state of the workbench tools and the pane
// grid that hosts them.
//
// Every tool is driven by messages through Update and described by View, so a front end
// only has to translate user input into messages and draw the returned lines. Tools that
// own background work, such as the transaction inspector and its decode pipeline,
// implement io.Closer and are closed when their pane is closed or replaced.
package workbench
