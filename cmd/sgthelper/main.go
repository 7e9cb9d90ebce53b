package main

import "sgthelper/cmd/sgthelper/cmd"

func main() {
	cmd.Execute()
}
