// cubie - CLI for the cubie-level cube model.
package main

import (
	"github.com/SeamusWaldron/cubie/internal/cli"
)

func main() {
	cli.Execute()
}
