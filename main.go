package main

import (
	"nuros-switch/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// switch manages alternatives on NurOS: every switchable facility (an editor,
// a pager, a compiler) is described by a module script that names one managed
// symlink and prints the executables it may point to. switch discovers those
// scripts in the user and system module directories, lists and shows the
// current choice and repoints the link on request.
//
// Error handling strategy:
//   - Discovery and metadata problems degrade gracefully and are only visible with --debug
//   - Failures of the requested action are printed with a hint and exit with status 1
func main() {
	cmd.Execute()
}
