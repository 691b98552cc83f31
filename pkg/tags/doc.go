/*
Package tags ships the built-in tag catalog.

The rendering core is agnostic about which tags exist; it only dispatches
by name through a registry. This package provides the standard catalog a
usable installation starts from:

  - get: echoes its first parameter (variable interpolation).
  - if / else: conditional body rendering with chained fallthrough.
  - set: writes a context key, producing no output.
  - each: renders its body once per list element with a loop variable.
  - uppercase / lowercase: string case folding.

Hosts register additional tags on the same registry; Default returns a
registry preloaded with the catalog above.
*/
package tags
