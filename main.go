package main

import "treeboard/cmd"

func main() {
	cmd.Execute()
}
