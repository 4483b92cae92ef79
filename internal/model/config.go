package model

type Config struct {
	Editor         string `yaml:"editor"`
	JsonDataDir    string `yaml:"json_data_dir"`
	DefaultChildID int    `yaml:"default_child_id"`
	API            struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Snapshot struct {
		Enable    bool `yaml:"enable"`
		Retention int  `yaml:"retention"`
	} `yaml:"snapshot"`
	Sync struct {
		Enable     bool     `yaml:"enable"`
		Platform   string   `yaml:"platform"`
		Bucket     string   `yaml:"bucket"`
		AWSProfile string   `yaml:"aws_profile"`
		AWSRegion  string   `yaml:"aws_region"`
		Include    []string `yaml:"include"`
		Exclude    []string `yaml:"exclude"`
	} `yaml:"sync"`
}

func DefaultConfig() Config {
	config := Config{
		Editor:         "vim",
		JsonDataDir:    "~/.config/lifeos/data",
		DefaultChildID: 1,
	}
	config.API.BaseURL = "http://localhost:8000"
	config.API.TimeoutSeconds = 15
	config.Snapshot.Enable = true
	config.Snapshot.Retention = 30
	return config
}
