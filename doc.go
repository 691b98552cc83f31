/*
Package weft is a concurrency-aware template rendering engine. It
evaluates parsed template syntax trees against a mutable data context and
produces output bytes, resolving independent subtrees without blocking
each other while keeping output strictly in source order.

Weft is the runtime half of a template engine: lexing and parsing happen
in the host (or templates are interchanged as structured documents, see
internal/dto). The engine walks the tree, evaluates expressions with
deliberate weak-typing rules, and dispatches tags: named, pluggable
constructs that may consume parameters and a body, mutate the rendering
context, and chain to an alternate tag when they decline to produce
output.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/weft"
		"github.com/aretw0/weft/pkg/domain"
	)

	func main() {
		engine := weft.New()

		template := []domain.Node{
			domain.Raw("Hello, "),
			domain.Tag("get", domain.Ident("name")),
			domain.Raw("!"),
		}

		out, err := engine.Render(context.Background(), template, map[string]any{
			"name": "World",
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out)) // Hello, World!
	}

# Failure Model

The first failure anywhere in the resolution graph (parameter evaluation,
a tag implementation, a nested serialization) aborts the whole render:
callers receive either the complete output or a single terminal error,
never partial output. Context mutations made before the failure are left
in place.
*/
package weft
