// Package main is the entry point for the phpcompat CLI.
package main

import "phpcompat.dev/pkg/phpcompat/cmd"

func main() {
	cmd.Execute()
}
