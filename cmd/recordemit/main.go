package main

import "github.com/aalvaropc/recordemit/internal/cli"

func main() {
	cli.Execute()
}
