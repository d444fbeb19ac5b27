// cmd/dnabpe/main.go
package main

import (
	"dnabpe/internal/app"
	"dnabpe/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
