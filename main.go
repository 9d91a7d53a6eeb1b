package main

import "github.com/Tiliavir/gym/cmd"

func main() {
	cmd.Execute()
}
