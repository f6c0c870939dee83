// Package analyze provides a class loader backed by Go type information.
//
// It uses golang.org/x/tools/go/packages and go/types to index the named
// types of Go packages as classes, so that method overloads can be
// selected by Go assignability rules.
//
// Key types:
//   - TypeClass: a named go/types type seen as a class
//   - Index: a classpath.Loader over indexed packages
//   - Analyzer: loads packages by pattern into an Index
package analyze
