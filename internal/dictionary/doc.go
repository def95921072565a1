// Package dictionary reads and writes the comma-delimited word lists
// used by findduplicates and translatedict. A well-formed line holds
// exactly two fields, a word and a payload. The first field, case-folded,
// is the entry key.
package dictionary
