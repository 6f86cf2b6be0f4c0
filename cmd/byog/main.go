package main

import (
	"github.com/xxrBear/build-your-own-git/cmd/byog/cmd"
)

func main() {
	cmd.Execute()
}
