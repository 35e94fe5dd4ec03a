// Package schema defines the intake form model: the closed field-kind set,
// the parser that turns raw descriptor sequences into immutable Schemas, and
// the loaders that read issue-form style definition documents from files,
// fs.FS entries, or URLs.
package schema
