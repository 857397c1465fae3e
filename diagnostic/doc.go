// Package diagnostic provides structured warnings and notes collected while
// analysing a value.
//
// Key capabilities:
//   - Degraded child reports (a capability method panicked and the child was
//     summarised as opaque)
//   - Cyclic reference notes
//   - A combined error view for callers that treat warnings as failures
package diagnostic
