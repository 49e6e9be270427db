// Copyright The sicasm Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package asm

import (
	"cmp"
	"slices"
)

// Symbol is a single label binding: a case-sensitive name and its
// program-relative address.
type Symbol struct {
	Name    string
	Address uint32
}

// SymbolTable maps label names to resolved addresses.  The table is built
// once during pass 1 and read-only thereafter; a binding, once made, never
// changes.
type SymbolTable struct {
	symbols map[string]uint32
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]uint32)}
}

// Define binds a name to an address, returning false if the name is already
// bound.  In that case the original binding is retained.
func (p *SymbolTable) Define(name string, address uint32) bool {
	if _, ok := p.symbols[name]; ok {
		return false
	}
	//
	p.symbols[name] = address
	//
	return true
}

// Resolve returns the address bound to a given name, or false if the name is
// unbound.
func (p *SymbolTable) Resolve(name string) (uint32, bool) {
	address, ok := p.symbols[name]
	return address, ok
}

// Has reports whether a given name is bound.
func (p *SymbolTable) Has(name string) bool {
	_, ok := p.symbols[name]
	return ok
}

// Count returns the number of bindings in this table.
func (p *SymbolTable) Count() int {
	return len(p.symbols)
}

// Symbols returns all bindings ordered by address (and by name amongst
// symbols sharing an address), as presented in listings.
func (p *SymbolTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(p.symbols))
	//
	for name, address := range p.symbols {
		symbols = append(symbols, Symbol{name, address})
	}
	//
	slices.SortFunc(symbols, func(l, r Symbol) int {
		if c := cmp.Compare(l.Address, r.Address); c != 0 {
			return c
		}
		//
		return cmp.Compare(l.Name, r.Name)
	})
	//
	return symbols
}
