package main

import "github.com/philipparndt/sghelper/cmd"

func main() {
	cmd.Execute()
}
