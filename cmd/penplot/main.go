package main

import (
	"log"

	"penplot/cmd/penplot/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("penplot: ")
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
