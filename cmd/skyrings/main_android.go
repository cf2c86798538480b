//go:build android

package main

import (
	"fmt"
	"os"

	"skyrings/internal/config"
	"skyrings/internal/game"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = config.Defaults()
	}
	game.RunAndroid(cfg)
}
