package types

// DataConfig holds settings for loading the metadata file.
type DataConfig struct {
	// Path is the delimited metadata file to load (e.g. "metadata.csv").
	Path string `json:"path" yaml:"path"`
}

// CleanConfig holds settings for the cleaning stage.
type CleanConfig struct {
	// MinYear drops records published before this year. Zero disables
	// the lower bound.
	MinYear int `json:"min_year" yaml:"min_year"`

	// MaxYear drops records published after this year. Zero disables
	// the upper bound.
	MaxYear int `json:"max_year" yaml:"max_year"`
}

// StatsConfig holds settings for the aggregation stage.
type StatsConfig struct {
	// TopJournals is the number of journals shown in rankings (default 10).
	TopJournals int `json:"top_journals" yaml:"top_journals"`

	// TopWords is the number of title words shown in rankings (default 20).
	TopWords int `json:"top_words" yaml:"top_words"`

	// Stopwords replaces the built-in stopword list when non-empty.
	Stopwords []string `json:"stopwords,omitempty" yaml:"stopwords,omitempty"`
}

// ReportConfig holds settings for static chart and summary output.
type ReportConfig struct {
	// OutputDir is the directory for rendered charts and summary files
	// (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// DashboardConfig holds settings for the interactive dashboard.
type DashboardConfig struct {
	// Addr is the listen address (default "localhost:8510").
	Addr string `json:"addr" yaml:"addr"`
}

// CatalogConfig holds settings for the SQLite snapshot store.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database (default "catalog").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Data      DataConfig      `json:"data" yaml:"data"`
	Clean     CleanConfig     `json:"clean" yaml:"clean"`
	Stats     StatsConfig     `json:"stats" yaml:"stats"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
}
