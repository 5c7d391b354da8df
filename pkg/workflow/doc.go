// Package workflow loads workflow descriptions: ordered task records that
// name an identifier, a human-readable task type and the identifiers of the
// tasks they depend on.
//
// # Input Format
//
// A workflow is a YAML stream with one document per task:
//
//	hash: 1b6d3586
//	taskType: com.example.BuildTask
//	dependencies: []
//	---
//	hash: 4554617c
//	taskType: com.example.TestTask
//	dependencies:
//	- 1b6d3586
//
// Every document must be a mapping with the keys hash, taskType and
// dependencies. Other keys are ignored. Documents are returned in stream
// order.
//
// # Identifiers
//
// A [Hash] keeps the literal scalar text from the document. A producer that
// writes hexadecimal hashes may emit values such as 00ff or 1e5 that a YAML
// resolver would read as numbers; they are kept exactly as written so the
// same text maps to the same node token wherever it appears.
//
// Loading does not check that dependencies resolve to tasks in the same
// document. [Validate] checks that identifiers are usable as graph node
// names and that no two tasks collide.
package workflow
