// Package classpath models the runtime class handles that overload
// disambiguation compares against, and the loaders that turn class names
// into those handles.
//
// Three loaders are provided:
//   - Hierarchy: classes declared explicitly (or from a YAML file) with a
//     superclass and interfaces, JVM-style.
//   - Registry: Go reflect.Type values registered under class names.
//   - Chain: tries several loaders in order.
//
// The go/types backed loader lives in package analyze.
package classpath
