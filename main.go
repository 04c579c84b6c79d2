package main

import "github.com/obralog/obralog/cmd"

func main() {
	cmd.Execute()
}
