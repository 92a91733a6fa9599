// Package dockyard finds the best unloading route through a dockyard.
//
// A dockyard is a rectangular grid. Each cell is Open, a Building, or a
// Crane. A route starts at the top-left cell, moves only South or East, and
// never enters a Building. The best route is the one that passes through
// the most Crane cells.
//
// 🚀 What's inside?
//
//	grid/   - cells, steps, the immutable Grid, persistent Path values and
//	          seeded random dockyards
//	cranes/ - the two searches (Exhaustive, DynProg), the traced and logged
//	          Solve/Verify dispatchers, and YAML/env configuration
//
// Quick ASCII example:
//
//	C . C
//	. X C
//	C C C
//
// has two best routes, E,E,S,S and S,S,E,E, each collecting four cranes.
//
//	go get github.com/katalvlaran/dockyard
package dockyard
