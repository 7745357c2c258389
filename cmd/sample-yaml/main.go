// cmd/sample-yaml/main.go
package main

import (
	"ichorkit/internal/appshell"
	"ichorkit/internal/manifestapp"
)

func main() { appshell.Main(manifestapp.RunContext) }
