// Package main runs the Revisr API: remote-triggered git actions on a single
// working copy, with file listings and an activity journal.
package main

import "github.com/apiarycd/revisr/internal"

func main() {
	internal.Run()
}
