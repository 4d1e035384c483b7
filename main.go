package main

import "github.com/gaurav-prasanna/postfmt/cmd"

func main() {
	cmd.Execute()
}
