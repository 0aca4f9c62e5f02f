package main

import (
	"fmt"
	"os"

	"prism/internal/ui"
)

func main() {
	p := ui.NewProgram()
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
