package main

import "github.com/nsalesky/mal/cmd"

func main() {
	cmd.Execute()
}
