package main

import "github.com/mouse-blink/buildmatrix/cmd"

func main() {
	cmd.Execute()
}
