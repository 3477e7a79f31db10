package main

import "github.com/antonomaz/imprimeurs/cmd"

func main() {
	cmd.Execute()
}
