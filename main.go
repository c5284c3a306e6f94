package main

import "darwin-nic/cmd"

func main() {
	cmd.Execute()
}
