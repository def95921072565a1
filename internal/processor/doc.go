// Package processor runs a dictionary translation. It reads the source
// dictionary row by row, asks a translation backend for the first column
// and writes the translated rows to the output file, reporting progress
// on stdout and failures on stderr.
package processor
