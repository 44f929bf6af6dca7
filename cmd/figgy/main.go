package main

import "github.com/aalvaropc/figgy/internal/cli"

func main() {
	cli.Execute()
}
