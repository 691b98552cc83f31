/*
Package ports defines the driven ports (interfaces) for the weft engine.

These interfaces decouple the rendering core from external implementations,
allowing the engine to work with any tag catalog, template source, and
context storage backend.

# Key Interfaces

  - Tag: A pluggable template construct dispatched by name.
  - BodyRenderer: The recursive serialization callback handed to tags.
  - TemplateLoader: Responsible for loading named template documents.
  - ContextStore: Responsible for persisting rendering contexts between
    requests.
*/
package ports
