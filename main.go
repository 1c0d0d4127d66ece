package main

import "github.com/KaramelBytes/homestat-cli/cmd"

func main() {
	cmd.Execute()
}
