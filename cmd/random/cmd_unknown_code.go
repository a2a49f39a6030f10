package main

import (
	"fmt"

	"github.com/Yandex-Practicum/ftracker/internal/random"
)

var unknownCodeCmd = cmd{
	name:      "unknown-code",
	shortHelp: "generates workout code missing from the package table",
	do:        generateUnknownCode,
}

func generateUnknownCode() {
	fmt.Print(random.UnknownCode())
}
