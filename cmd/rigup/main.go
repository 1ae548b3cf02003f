// rigup provisions a fresh Linux workstation for scientific-computing work.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
