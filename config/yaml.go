package config

// config/yaml.go

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type JavascriptTarget struct {
	Source string `yaml:"source"`
	OutDir string `yaml:"out_dir"`
}

// Engine is the server-side configuration loaded from site.yaml. The content
// manifests (site, theme, layout, design, personal) live under ContentRoot
// and are a separate, JSON-based contract.
type Engine struct {
	Origin            string                      `yaml:"origin"`
	ContentRoot       string                      `yaml:"content_root"`
	ChatEndpoint      string                      `yaml:"chat_endpoint"`
	PreferencesFile   string                      `yaml:"preferences_file"`
	JavascriptTargets map[string]JavascriptTarget `yaml:"javascript"`
}

func LoadEngine(filename string) (*Engine, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading engine config %s", filename)
	}

	var engine Engine
	if err := yaml.Unmarshal(data, &engine); err != nil {
		return nil, errors.Wrapf(err, "parsing engine config %s", filename)
	}

	if engine.ContentRoot == "" {
		engine.ContentRoot = "page_content"
	}
	if engine.PreferencesFile == "" {
		engine.PreferencesFile = "preferences.toml"
	}
	if engine.ChatEndpoint == "" {
		engine.ChatEndpoint = os.Getenv("CHAT_API_URL")
	}

	return &engine, nil
}
