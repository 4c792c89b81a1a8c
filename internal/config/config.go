package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Supported chat providers
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

const (
	defaultProfileName = "default"
	defaultHost        = "http://localhost:11434"
	defaultModel       = "functiongemma"
)

type Profile struct {
	Provider string `json:"provider"`
	Host     string `json:"host,omitempty"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	path           string
}

// DefaultProfile targets a local Ollama server
func DefaultProfile() Profile {
	return Profile{
		Provider: ProviderOllama,
		Host:     defaultHost,
		Model:    defaultModel,
	}
}

// Validate checks that the profile can build a chat strategy
func (p Profile) Validate() error {
	switch p.Provider {
	case ProviderOllama, "":
		return nil
	case ProviderOpenAI:
		if p.APIKey == "" && p.Host == "" {
			return fmt.Errorf("openai profile needs an api key or a custom host")
		}
		return nil
	default:
		return fmt.Errorf("unknown provider %q", p.Provider)
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the config at configPath, writing a default one if missing
func LoadConfigFrom(configPath string) (*Config, error) {
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// Current returns the active profile
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return DefaultProfile()
	}
	return *c.currentProfile
}

func (c *Config) Path() string {
	return c.path
}

// ProfileNames returns profile names in sorted order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UseProfile makes name the active profile without saving
func (c *Config) UseProfile(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

// SetProfile adds or replaces a profile
func (c *Config) SetProfile(name string, profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	c.Profiles[name] = profile
	if name == c.ActiveProfile {
		c.currentProfile = &profile
	}
	return nil
}

// DeleteProfile removes a profile. Deleting the active profile activates
// another one, or recreates the default when none is left.
func (c *Config) DeleteProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	delete(c.Profiles, name)

	if c.ActiveProfile != name {
		return nil
	}
	if len(c.Profiles) == 0 {
		c.Profiles[defaultProfileName] = DefaultProfile()
	}
	c.ActiveProfile = c.ProfileNames()[0]
	return c.setCurrentProfile()
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORICHAT_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICHAT_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorichat", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			defaultProfileName: DefaultProfile(),
		},
		ActiveProfile: defaultProfileName,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
		profile = c.Profiles[c.ActiveProfile]
	}

	c.currentProfile = &profile
	return nil
}
