package exec

import "io"

// CommandConfig configures a command for execution. Script is a full shell line; it is handed to the shell verbatim
// so that operators like `&&` or redirects keep their meaning.
type CommandConfig struct {
	Script string
	Env    []string
	Stdin  io.Reader
	Stderr io.Writer
	Stdout io.Writer
}
