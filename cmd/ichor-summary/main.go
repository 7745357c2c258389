// cmd/ichor-summary/main.go
package main

import (
	"ichorkit/internal/appshell"
	"ichorkit/internal/summaryapp"
)

func main() { appshell.Main(summaryapp.RunContext) }
