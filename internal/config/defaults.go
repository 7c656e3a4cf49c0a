package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 120
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Storage.SessionPath == "" {
		cfg.Storage.SessionPath = ".config/matchctl/session"
	}
	if cfg.Storage.HistoryPath == "" {
		cfg.Storage.HistoryPath = ".local/share/matchctl/history.db"
	}
	if cfg.Storage.KeywordIndexPath == "" {
		cfg.Storage.KeywordIndexPath = ".local/share/matchctl/keyword.bleve"
	}
	if cfg.Export.Directory == "" {
		cfg.Export.Directory = "."
	}
	if cfg.Email.Subject == "" {
		cfg.Email.Subject = "MatchLLM - Resultado do Match"
	}
	if cfg.Email.Body == "" {
		cfg.Email.Body = "Segue o resultado em anexo (exportado pelo MatchLLM)."
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
