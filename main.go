package main

import "github.com/renamekit/renamekit/internal/cmd"

func main() {
	cmd.Execute()
}
