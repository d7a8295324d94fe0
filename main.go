package main

import "github.com/masmgr/historian/cmd"

func main() {
	cmd.Run()
}
