// Package ir holds the in-memory form of an RTLIL design: modules with their
// wires, memories, cells, processes and connections.
//
// Every collection that is keyed by name is an OrderedMap so iteration
// follows declaration order and a design re-emits in the order it was read.
// Signal specifications, process actions and constants are closed sum types:
// consumers type-switch over the variants listed next to each interface.
package ir
