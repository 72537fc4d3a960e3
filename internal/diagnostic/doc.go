// Package diagnostic provides structured findings for formbind tooling:
// manifest validation problems and form check results.
//
// Key capabilities:
//   - Unbound field warnings with near-miss control suggestions
//   - Shadowed and write-only control reports
//   - Manifest errors
package diagnostic
