// Package keyfile reads and writes the plain-text record format used to
// store an obfuscated string and its key:
//
//	string : xsbGxsY=
//	key : edcba
//
// Each field occupies one line of the form "<name> : <value>". Lines may be
// split over several files and may appear in any order. The package does
// no I/O; callers pass file contents in and get file contents out.
package keyfile
