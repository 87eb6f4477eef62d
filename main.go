package main

import "github.com/eugenechae/podcast-index-mcp/cmd"

// @title           Podcast Index MCP
// @version         1.0.0
// @description     Exposes the Podcast Index search API to tool-calling agents
// @contact.name    API Support
// @contact.url     https://github.com/eugenechae/podcast-index-mcp
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
