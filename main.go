package main

import "github.com/gaurav-prasanna/claritycompass/cmd"

func main() {
	cmd.Execute()
}
