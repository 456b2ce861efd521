package main

import "github.com/ringkit/ringkit/cmd"

func main() {
	cmd.Execute()
}
