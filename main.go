package main

import "github.com/kasuboski/dvrdispatch/cmd"

func main() {
	cmd.Execute()
}
