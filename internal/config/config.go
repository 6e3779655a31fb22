package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration
type AppConfig struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	Auth      AuthConfig      `toml:"auth"`
	AI        AIConfig        `toml:"ai"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// ServerConfig http server
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig storage location and backend
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	Backend string `toml:"backend"` // sqlite | file | memory
	Seed    bool   `toml:"seed_demo_data"`
}

// AuthConfig bcrypt hashes for the two gates
type AuthConfig struct {
	Users        map[string]string `toml:"users"` // username -> bcrypt hash
	SettingsHash string            `toml:"settings_hash"`
}

// AIConfig summary generation
type AIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// DashboardConfig aggregation behaviour
type DashboardConfig struct {
	MergeAllFields bool `toml:"merge_all_fields"`
}

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// LoadConfigInfo metadata about how the config was loaded
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20261,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
			Backend: BackendSQLite,
			Seed:    true,
		},
		Auth: AuthConfig{
			Users: map[string]string{},
		},
		AI: AIConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory holding the executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml beside the executable
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	// a missing .env is normal
	_ = godotenv.Load(filepath.Join(exeDir, ".env"))

	return LoadFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadFrom loads a specific config file, then applies environment overrides.
// A missing file yields the defaults.
func LoadFrom(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, info, err
		}
	} else {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	applyEnv(config, &info)
	return config, info, nil
}

func applyEnv(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("SALESBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
	if v := os.Getenv("SALESBOARD_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SALESBOARD_BACKEND"); v != "" {
		config.Data.Backend = v
	}
	if v := os.Getenv("SALESBOARD_SETTINGS_HASH"); v != "" {
		config.Auth.SettingsHash = v
	}
	// SALESBOARD_LOGIN_USER + SALESBOARD_LOGIN_HASH add one login identity
	if user, hash := os.Getenv("SALESBOARD_LOGIN_USER"), os.Getenv("SALESBOARD_LOGIN_HASH"); user != "" && hash != "" {
		if config.Auth.Users == nil {
			config.Auth.Users = map[string]string{}
		}
		config.Auth.Users[user] = hash
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.AI.APIKey = v
	}
	if v := os.Getenv("SALESBOARD_AI_MODEL"); v != "" {
		config.AI.Model = v
	}
}

// LoadConfig loads config.toml beside the executable
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes config.toml beside the executable
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0600)
}

// EnsureDataDir creates the data directory, relative paths resolve against the executable
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}
