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

import (
	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/position"
)

// resolveRoots picks the Query/Mutation/Subscription root object types. A
// "schema { ... }" block, if any was seen, wins; otherwise the
// conventionally-named types Query, Mutation, Subscription are used when
// they exist and are object types. A missing query root is fatal; a
// missing mutation/subscription root is never an error.
func resolveRoots(tm *TypeMap, blocks []schemaBlockEntry) (query, mutation, subscription *ObjectType, errs []error) {
	assigned := make(map[ast.OperationType]NamedTypeRef)
	assignedOrder := make(map[ast.OperationType][]position.SourceLocation)
	byUnderlyingType := make(map[string][]position.SourceLocation)

	for _, block := range blocks {
		for _, rot := range block.def.RootOperationTypes {
			ref := NamedTypeRef{Name: rot.Type.Value, Loc: block.loc(rot.Type.NameSpan)}
			if first, ok := assigned[rot.Operation]; ok {
				errs = append(errs, errDuplicateOperationDefinition(string(rot.Operation), first.Loc, ref.Loc))
				continue
			}
			assigned[rot.Operation] = ref
			assignedOrder[rot.Operation] = append(assignedOrder[rot.Operation], ref.Loc)
			byUnderlyingType[ref.Name] = append(byUnderlyingType[ref.Name], ref.Loc)
		}
	}

	for typeName, locs := range byUnderlyingType {
		if len(locs) > 1 {
			errs = append(errs, errNonUniqueOperationTypes(typeName, locs))
		}
	}

	resolve := func(op ast.OperationType, fallbackName string) *ObjectType {
		var name string
		if ref, ok := assigned[op]; ok {
			name = ref.Name
		} else if len(blocks) == 0 {
			name = fallbackName
		} else {
			return nil
		}
		t, ok := tm.Lookup(name)
		if !ok {
			return nil
		}
		obj, ok := t.(*ObjectType)
		if !ok {
			return nil
		}
		return obj
	}

	query = resolve(ast.OperationTypeQuery, "Query")
	mutation = resolve(ast.OperationTypeMutation, "Mutation")
	subscription = resolve(ast.OperationTypeSubscription, "Subscription")

	if query == nil {
		errs = append(errs, errNoQueryOperationTypeDefined())
	}

	return query, mutation, subscription, errs
}
