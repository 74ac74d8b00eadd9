package main

import (
	"github.com/cineverse/core/internal/app"
	"github.com/cineverse/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
