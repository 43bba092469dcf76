// cmd/server/main.go
package main

import (
	"go-expense-tracker/app"
)

// @title           Expense Tracker API
// @version         1.0
// @description     Personal finance tracker: CRUD over a single transactions table.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	app.Run()
}
