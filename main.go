package main

import "icevision/cmd"

func main() {
	cmd.Execute()
}
