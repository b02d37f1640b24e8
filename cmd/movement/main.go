// movement adds and subtracts durations from a time of day.
package main

import (
	"os"

	"github.com/stigoleg/movement/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
