// internal/api/models.go
package api

import "roster-browser/internal/roster"

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Nationality  string `json:"nationality"`
	JerseyNumber int    `json:"jersey_number"`
	BirthDate    string `json:"birth_date"`
	Height       string `json:"height"`
	Weight       int    `json:"weight"`
	Handedness   string `json:"handedness"`
	ActiveStatus bool   `json:"active_status"`

	RegularSeasonGoals       int `json:"regular_season_goals"`
	RegularSeasonAssists     int `json:"regular_season_assists"`
	RegularSeasonPoints      int `json:"regular_season_points"`
	RegularSeasonGamesPlayed int `json:"regular_season_games_played"`

	PlayoffGoals       int `json:"playoff_goals"`
	PlayoffAssists     int `json:"playoff_assists"`
	PlayoffPoints      int `json:"playoff_points"`
	PlayoffGamesPlayed int `json:"playoff_games_played"`

	GamesPlayed int `json:"games_played"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	Points      int `json:"points"`

	Team Team `json:"team"`
}

// SearchResponse is the endpoint's paginated list payload. The query echo
// fields let callers confirm what the server actually evaluated.
type SearchResponse struct {
	Players    []Player `json:"players"`
	Count      int      `json:"count"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`

	SearchQuery string          `json:"search_query"`
	SearchField string          `json:"search_field"`
	SortBy      string          `json:"sort_by"`
	SortOrder   string          `json:"sort_order"`
	Filters     []roster.Filter `json:"filters"`
}

type Column struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Required     bool     `json:"required"`
	Capabilities []string `json:"capabilities"`
	FieldType    string   `json:"field_type"`
}

type ColumnMetadataResponse struct {
	Columns               []Column `json:"columns"`
	Count                 int      `json:"count"`
	DefaultVisibleColumns []string `json:"default_visible_columns"`
}
