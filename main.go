package main

import "github.com/mj1618/a11ytree/cmd"

func main() {
	cmd.Execute()
}
