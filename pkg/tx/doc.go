// Package tx wraps the Transifex command line client.
//
// [Run] checks the sub-command against [Commands], locates the project root
// (the nearest parent holding a .tx directory) and runs the client there.
package tx
