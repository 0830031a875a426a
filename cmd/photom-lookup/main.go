// cmd/photom-lookup/main.go
package main

import (
	"os"

	"photom/internal/lookupapp"
)

func main() {
	os.Exit(lookupapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
