package main

import (
	"github.com/lhecker/ta-office/cmd"
)

func main() {
	cmd.Execute()
}
