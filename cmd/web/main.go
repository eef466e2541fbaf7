package main

import "smartadmin_backend/internal/app"

func main() {
	app.Run()
}
