// Package shell implements the interactive command interface to the
// transform library.
//
// The shell reads one command per line from its input, tokenizes it, and
// dispatches to the matching handler. Session state (the current image,
// the optional second image used by the fusion commands, and the decode
// cache) lives in an explicit App value owned by the Shell; there are no
// package-level globals. Command failures are printed as single-line
// errors and never terminate the loop.
package shell
