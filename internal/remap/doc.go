// Package remap resolves symbolic member names to the names valid in the
// running program.
//
// Three naming schemes label the same program element: the runtime scheme
// (what the running program uses), the intermediate scheme (what callers
// write against) and the canonical scheme, which both member tables share
// and which bridges the other two. Resolution runs in two stages:
//
//   - the intermediate table maps the symbol to its canonical member name
//     (the bridge);
//   - the runtime table maps the bridge to the runtime name.
//
// A miss at any point falls back to the symbol itself. Methods additionally
// require the entry's descriptor parameter classes to accept the supplied
// argument classes; the first compatible entry in table order wins.
//
// A Resolver memoizes results per (owner, symbol[, argument classes]) and is
// safe for concurrent use. Mapping tables must not change after the resolver
// is created; cached answers are never invalidated.
package remap
