package main

import "devcalc/cmd"

func main() {
	cmd.Execute()
}
