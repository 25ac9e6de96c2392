package main

import "wayfind/cmd"

func main() {
	cmd.Execute()
}
