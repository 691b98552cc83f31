/*
Package future provides the single-assignment result cell the rendering
engine uses to sequence and combine asynchronous sub-resolutions.

A Result is completed exactly once, with either a value or a failure.
Continuations can be attached before or after completion; either way they
observe a fully settled cell. The All and Then/Map combinators compose
cells into ordered dependency graphs without blocking: All joins sibling
resolutions while preserving their original order, and Then flattens a
transform that itself produces another cell.

Tag implementations are free to complete their cells from other goroutines
(for example after I/O); the engine never assumes a cell settles
synchronously.
*/
package future
