package cranes

import "github.com/katalvlaran/dockyard/grid"

// NextSequence exposes the exhaustive enumerator's counter step to tests.
var NextSequence = nextSequence

// ExtendedEntry runs the DP predecessor extension on a present or absent
// entry and reports the resulting entry.
func ExtendedEntry(p grid.Path, present bool, s grid.Step) (grid.Path, bool) {
	e := entry{path: p, ok: present}.extended(s)

	return e.path, e.ok
}
