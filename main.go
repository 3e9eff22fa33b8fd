package main

import "github.com/alexiusacademia/loadcomb/cmd"

func main() {
	cmd.Execute()
}
