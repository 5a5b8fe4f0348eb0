// Command libraflow runs the LibraFlow catalog CLI.
package main

import "github.com/mesh-intelligence/libraflow/internal/cli"

func main() {
	cli.Execute()
}
