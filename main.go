package main

import (
	"bsp-inspector/cli"
)

func main() {
	cli.Start()
}
