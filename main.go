package main

import "github.com/robalobadob/termordle/internal/cli"

func main() {
	cli.Execute()
}
