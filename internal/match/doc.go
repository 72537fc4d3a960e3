// Package match ranks control identifiers by how close their trailing
// segment is to a property name. The check command uses it to suggest the
// control a developer probably meant when a property binds to nothing.
//
// Key functions:
//   - NormalizeIdent: case-folds and strips separators
//   - Levenshtein: computes edit distance between strings
//   - RankControls / Suggest: order candidate identifiers by similarity
package match
