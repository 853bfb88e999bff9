package main

import "github.com/bgraf/tagwerk/cmd"

func main() {
	cmd.Execute()
}
