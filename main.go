package main

import "github.com/ndnfwd/ribd/cmd"

func main() {
	cmd.Execute()
}
