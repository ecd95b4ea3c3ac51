package model

// Project is a local portfolio project with its own detail page
type Project struct {
	Name        string   `json:"name" mapstructure:"Name"`
	Path        string   `json:"path" mapstructure:"Path"`
	Description string   `json:"description" mapstructure:"Description"`
	Tags        []string `json:"tags" mapstructure:"Tags"`
	Category    string   `json:"category" mapstructure:"Category"`
}
