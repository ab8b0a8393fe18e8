package main

import "github.com/Rodrigo-Rojo/blog/cmd"

func main() {
	cmd.Execute()
}
