package main

import "github.com/RyanBlaney/sonido-ssi/internal/cli"

func main() {
	cli.Execute()
}
