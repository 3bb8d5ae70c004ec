/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

import "fmt"

// annotationHasNullableLink reports whether any layer of ann — the list
// wrapper at any depth, or the innermost named type — permits null. This
// is what "breaks" an otherwise-circular input field chain: a nullable
// link anywhere means the value can always legally be omitted, so the
// chain is never *forced* to recurse infinitely.
func annotationHasNullableLink(ann TypeAnnotation) bool {
	for ann != nil {
		if ann.Nullable() {
			return true
		}
		switch v := ann.(type) {
		case ListType:
			ann = v.Inner
		case NamedType:
			return false
		default:
			return false
		}
	}
	return false
}

// validateInputObjectCycles runs an independent DFS from every input-
// object type across the non-null-only induced subgraph.
func validateInputObjectCycles(tm *TypeMap) []error {
	var errs []error
	for _, t := range tm.All() {
		io, ok := t.(*InputObjectType)
		if !ok {
			continue
		}
		errs = append(errs, dfsInputCycle(tm, io.Name, nil, nil, map[string]int{})...)
	}
	return errs
}

func dfsInputCycle(tm *TypeMap, current string, typePath, fieldPath []string, onStack map[string]int) []error {
	if idx, found := onStack[current]; found {
		chain := buildInputChain(typePath[idx:], fieldPath[idx:], current)
		t, _ := tm.Lookup(typePath[idx])
		io := t.(*InputObjectType)
		loc := io.Location
		if idx < len(fieldPath) {
			if f, ok := findArgument(io.Fields, fieldPath[idx]); ok {
				loc = f.Location
			}
		}
		return []error{errCircularInputFieldChain(chain, loc)}
	}

	t, ok := tm.Lookup(current)
	if !ok {
		return nil
	}
	io, ok := t.(*InputObjectType)
	if !ok {
		return nil
	}

	onStack[current] = len(typePath)
	newTypePath := append(append([]string{}, typePath...), current)
	var errs []error

	for _, f := range io.Fields {
		if annotationHasNullableLink(f.Type) {
			continue
		}
		ref := InnermostRef(f.Type)
		target, ok := tm.Lookup(ref.Name)
		if !ok {
			continue
		}
		if _, ok := target.(*InputObjectType); !ok {
			continue
		}
		newFieldPath := append(append([]string{}, fieldPath...), f.Name)
		errs = append(errs, dfsInputCycle(tm, ref.Name, newTypePath, newFieldPath, onStack)...)
	}

	delete(onStack, current)
	return errs
}

// buildInputChain renders the cycle's path as "Type → Type.field → Type →
// ... → Type" items, ending with the type that closes the cycle.
func buildInputChain(typePath, fieldPath []string, closingType string) []string {
	chain := make([]string, 0, len(typePath)*2+1)
	for i, t := range typePath {
		chain = append(chain, t)
		if i < len(fieldPath) {
			chain = append(chain, fmt.Sprintf("%s.%s", t, fieldPath[i]))
		}
	}
	chain = append(chain, closingType)
	return chain
}
