// Package main is the entry point for the typesplit CLI.
package main

import "github.com/aldenms/typesplit/internal/cli"

func main() {
	cli.Execute()
}
