// cmd/fasta2debruijn/main.go
package main

import (
	"fa2dbg/internal/app"
	"fa2dbg/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
