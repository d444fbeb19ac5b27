// cmd/dnabpe-cooc/main.go
package main

import (
	"dnabpe/internal/appshell"
	"dnabpe/internal/coocapp"
)

func main() {
	appshell.Main(coocapp.RunContext)
}
