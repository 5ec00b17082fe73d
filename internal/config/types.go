package config

// Config is the top-level stackguides configuration, corresponding to .stackguides.yml.
type Config struct {
	SiteName    string   `yaml:"site_name" koanf:"site_name"`
	ContentDir  string   `yaml:"content_dir" koanf:"content_dir"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	DataDir     string   `yaml:"data_dir" koanf:"data_dir"`
	Port        int      `yaml:"port" koanf:"port"`
	FeedbackURL string   `yaml:"feedback_url" koanf:"feedback_url"`
	LedgerDir   string   `yaml:"ledger_dir" koanf:"ledger_dir"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
}
