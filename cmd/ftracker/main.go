package main

//go:generate go build -o=../../bin/ftracker

import (
	"log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.SetPrefix("ftracker: ")
		log.Fatal(err)
	}
}
