// Package dotenv loads KEY=VALUE pairs from a dotenv file into an
// environment store.
//
// Each line of the file is one of:
//   - a blank line
//   - a comment, whose first non-space character is '#'
//   - an assignment KEY or KEY=VALUE
//
// Values are taken verbatim after the first '='. There is no quoting,
// escaping, interpolation or line continuation.
//
// A Policy decides what happens when a key is already set: Override always
// applies the file's value (an empty value removes the key), Skip only fills
// keys that are absent.
//
// The process environment is not synchronised. Callers running loads
// concurrently must serialise them.
package dotenv
