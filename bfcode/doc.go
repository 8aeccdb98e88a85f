// The bfcode subpackage implements the scanning and parsing of BFCode,
// the small bracket-tag markup language that bftxt renderers understand.
//
// Tags are delimited by '[' and ']'. A tag body is either a command
// name ("b", "/color") or a command name followed by '=' and a comma
// separated list of arguments ("color=255,128,0", "shake=3"). Closing
// tags are written as "/command".
//
// The package is purely syntactic: it doesn't know anything about fonts
// or drawing, and it never allocates state beyond the returned [Tag].
// Whether a recognized tag has any effect is up to the renderer.
package bfcode
