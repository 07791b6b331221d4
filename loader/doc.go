// Package loader reads and writes the line-oriented textual exchange
// format contacts are exchanged in between the core and its
// collaborators: one contact per line, nine comma-separated fields,
// `#` comments and blank lines ignored, malformed lines skipped
// silently rather than rejected.
//
// File layout:
//
//	format.go   field order, ParseLine, FormatLine
//	reader.go   ReadContacts, LoadFile
//	writer.go   WriteContacts
package loader
