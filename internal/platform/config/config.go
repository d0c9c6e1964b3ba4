package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	JournalPath string
	DBPath      string
	StatePath   string
	MediaPath   string
}

func New(journalPath string) (Config, error) {
	if journalPath == "" {
		return Config{}, fmt.Errorf("journal path is required")
	}
	return Config{
		JournalPath: journalPath,
		DBPath:      filepath.Join(journalPath, ".innerwork", "innerwork.db"),
		StatePath:   filepath.Join(journalPath, ".innerwork"),
		MediaPath:   filepath.Join(journalPath, "media"),
	}, nil
}
