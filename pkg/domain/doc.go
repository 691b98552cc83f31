/*
Package domain contains the core domain models for the weft rendering engine.

It defines the fundamental entities of the template runtime: the syntax tree
consumed from the host parser, the value union that rendering reads and
produces, and the mutable rendering context shared across a render. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Node: One element of a template syntax tree (raw text, constant,
    identifier, expression, negation, or tag invocation).
  - Value: The closed data union (null, bool, int, float, string, dict,
    list) with the engine's coercion rules.
  - Context: The mutable value tree a render resolves identifiers against
    and tags may write to.
  - ParsedTag: A fully resolved tag invocation handed to a tag
    implementation.
*/
package domain
