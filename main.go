package main

import (
	"os"

	"github.com/rupachimney/website/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
