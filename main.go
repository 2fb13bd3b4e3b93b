package main

import "github.com/theirongolddev/stageward/cmd"

func main() {
	cmd.Execute()
}
