package main

import "github.com/manifest-network/animalspotter/cmd"

func main() {
	cmd.Execute()
}
