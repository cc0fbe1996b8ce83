package main

import "github.com/tranvictor/enslens/cmd"

func main() {
	cmd.Execute()
}
