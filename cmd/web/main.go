// @title           PawMatch API
// @version         1.0
// @description     Pet care marketplace backend.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "pawmatch_backend/internal/app"

func main() {
	app.Run()
}
