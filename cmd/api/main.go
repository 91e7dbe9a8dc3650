package main

import (
	_ "bond_portal/docs"
	"bond_portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bond Portal API
// @version         1.0
// @description     Surety bond offers and the emailed acceptance flow (token + one-time code).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
