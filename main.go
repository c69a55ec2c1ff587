package main

import (
	"os"

	"github.com/gojira/gojira/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
