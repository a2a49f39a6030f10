package main

import (
	"flag"
)

// Доступные для тест-сьютов флаги командной строки
var (
	flagTargetBinaryPath string // путь до бинарного файла ftracker
)

func init() {
	flag.StringVar(&flagTargetBinaryPath, "binary-path", "", "path to target ftracker binary")
}
