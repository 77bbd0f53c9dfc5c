// Package main is the entry point for the cmock CLI.
package main

import "cmock.dev/pkg/cmock/cmd"

func main() {
	cmd.Execute()
}
