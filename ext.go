// Copyright 2025 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package lightmark

// matchNever is the predicate of reserved extension slots
// (table and math syntax). They hold a position in the priority order
// but are never instantiated.
func matchNever(string) bool { return false }

type inertContext struct{}

func newInertContext(int) Context { return inertContext{} }

func (inertContext) Handle(*Parser, string) (handleResult, error) { return exited, nil }

func (inertContext) Accept(*Block) {}

func (inertContext) OnExit() {}

func (inertContext) Create() *Block { return &Block{kind: NullKind} }
