package main

import (
	_ "chamba_facil/docs"
	"chamba_facil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Chamba Fácil API
// @version         1.0
// @description     Checkout, payment webhooks and upload signatures for the Chamba Fácil marketplace.

// @host localhost:3000

// @BasePath  /

func main() {
	routes.Run()
}
