package main

import "github.com/adidesxdi/sudoku-cli-ai-orchestration/cmd"

func main() {
	cmd.Execute()
}
