package main

import "logmon/cmd"

func main() {
	cmd.Execute()
}
