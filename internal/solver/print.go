package solver

import "github.com/fatih/color"

func printProgress(format string, a ...any) {
	color.Yellow(format, a...)
}
