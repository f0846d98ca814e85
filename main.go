package main

import (
	"privateChat/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
