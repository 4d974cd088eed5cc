package main

import "github.com/jsphweid/chording/cmd"

func main() {
	cmd.Execute()
}
