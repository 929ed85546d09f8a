package main

import "github.com/pfrederiksen/passing-stats/internal/cli"

func main() {
	cli.Execute()
}
