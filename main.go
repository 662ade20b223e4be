package main

import "github.com/alexiusacademia/gostor/cmd"

func main() {
	cmd.Execute()
}
