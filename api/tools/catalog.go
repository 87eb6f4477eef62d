package tools

import "github.com/eugenechae/podcast-index-mcp/api/types"

// Schema fragments shared across tool definitions.

func maxProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of results (1-1000, default 10)",
		"minimum":     1,
		"maximum":     1000,
	}
}

func fulltextProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Return full text fields instead of truncated descriptions",
	}
}

func valProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Only return feeds with a value block of this type",
		"enum":        []string{"any", "lightning", "hive", "webmonetization"},
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Catalog returns the definitions of every callable tool, in the shape a
// tool-calling agent expects for discovery.
func Catalog() []types.ToolDefinition {
	return []types.ToolDefinition{
		{
			Name:        "search_podcasts",
			Description: "Search for podcasts by term. Searches against podcast title, author, and owner fields in the Podcast Index.",
			InputSchema: objectSchema(map[string]interface{}{
				"q": map[string]interface{}{
					"type":        "string",
					"description": "Search query term",
				},
				"max":      maxProperty(),
				"val":      valProperty(),
				"clean":    map[string]interface{}{"type": "boolean", "description": "Exclude explicit content"},
				"fulltext": fulltextProperty(),
				"aponly":   map[string]interface{}{"type": "boolean", "description": "Only return podcasts with iTunes IDs"},
				"similar":  map[string]interface{}{"type": "boolean", "description": "Include similar matches"},
			}, "q"),
		},
		{
			Name:        "search_podcasts_by_title",
			Description: "Search for podcasts matching the title field only, with optional fuzzy matching.",
			InputSchema: objectSchema(map[string]interface{}{
				"q": map[string]interface{}{
					"type":        "string",
					"description": "Search query to match against podcast titles",
				},
				"max":      maxProperty(),
				"val":      valProperty(),
				"clean":    map[string]interface{}{"type": "boolean", "description": "Exclude explicit content"},
				"fulltext": fulltextProperty(),
				"similar":  map[string]interface{}{"type": "boolean", "description": "Include similar matches using fuzzy search"},
			}, "q"),
		},
		{
			Name:        "search_episodes_by_person",
			Description: "Search for episodes mentioning a person in person tags, titles, or descriptions.",
			InputSchema: objectSchema(map[string]interface{}{
				"person": map[string]interface{}{
					"type":        "string",
					"description": "Person name to search for",
				},
				"max":      maxProperty(),
				"fulltext": fulltextProperty(),
			}, "person"),
		},
		{
			Name:        "get_episodes_by_feed",
			Description: "List episodes of a podcast feed in reverse-chronological order.",
			InputSchema: objectSchema(map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Podcast Index feed ID",
					"minimum":     1,
				},
				"since": map[string]interface{}{
					"type":        "integer",
					"description": "Only return episodes published since this unix timestamp",
					"minimum":     0,
				},
				"max":      maxProperty(),
				"fulltext": fulltextProperty(),
			}, "id"),
		},
		{
			Name:        "get_podcast_by_id",
			Description: "Fetch a podcast feed's details by its Podcast Index feed ID.",
			InputSchema: objectSchema(map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Podcast Index feed ID",
					"minimum":     1,
				},
			}, "id"),
		},
		{
			Name:        "get_episode_by_id",
			Description: "Fetch a single episode's details by its Podcast Index episode ID.",
			InputSchema: objectSchema(map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Podcast Index episode ID",
					"minimum":     1,
				},
				"fulltext": fulltextProperty(),
			}, "id"),
		},
	}
}
