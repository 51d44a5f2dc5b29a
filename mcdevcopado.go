// Package mcdevcopado holds variables that describe this specific build. They are set during compile time using
// `-ldflags`.
package mcdevcopado

// Version is the version of this build
var Version = "unset"
