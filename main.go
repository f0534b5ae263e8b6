// Package main is the entry point for the mutline CLI.
package main

import "github.com/mutline/mutline/cmd"

func main() {
	cmd.Execute()
}
