package model

// AppConfig holds application-wide preferences persisted between sessions.
type AppConfig struct {
	// Defaults applied to new plans
	DefaultBoothWidth  float64 `json:"default_booth_width"`
	DefaultBoothHeight float64 `json:"default_booth_height"`
	DefaultScaleRatio  float64 `json:"default_scale_ratio"` // cm per world unit

	// Layout analysis service
	AnalysisEndpoint string `json:"analysis_endpoint"`
	AnalysisTimeout  int    `json:"analysis_timeout"` // seconds

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
	ShowGrid    bool     `json:"show_grid"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultBoothWidth:  60,
		DefaultBoothHeight: 40,
		DefaultScaleRatio:  5.0, // 1 world unit = 5 cm
		AnalysisTimeout:    10,
		RecentPlans:        []string{},
		Theme:              "system",
		ShowGrid:           true,
	}
}

// AddRecentPlan prepends a path to the recent plans list, deduplicating
// and capping the list at ten entries.
func (c *AppConfig) AddRecentPlan(path string) {
	recent := []string{path}
	for _, p := range c.RecentPlans {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentPlans = recent
}
