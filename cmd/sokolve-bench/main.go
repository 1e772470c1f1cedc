package main

import "github.com/katalvlaran/sokolve/cmd/sokolve-bench/cmd"

func main() {
	cmd.Execute()
}
