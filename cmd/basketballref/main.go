package main

import "github.com/nthakkar/basketballref/internal/cli"

func main() {
	cli.Execute()
}
