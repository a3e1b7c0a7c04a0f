package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	Width         int
	Height        int
	Scale         int
	PenWidth      float64
	ReplayDelay   time.Duration
	DoubleClick   time.Duration
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		Width:         defaultWidth,
		Height:        defaultHeight,
		Scale:         defaultScale,
		PenWidth:      defaultPenWidth,
		ReplayDelay:   defaultReplayDelay,
		DoubleClick:   defaultDoubleClick,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".turmrc"), homeDir)
}

// loadConfigFrom reads a key=value rc file. Unknown keys and bad values are
// ignored and leave the default in place.
func loadConfigFrom(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "width":
			setPositiveInt(&config.Width, value)
		case "height":
			setPositiveInt(&config.Height, value)
		case "scale":
			setPositiveInt(&config.Scale, value)
		case "penwidth", "pen_width":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.PenWidth = f
			}
		case "replaydelay", "replay_delay":
			setMillis(&config.ReplayDelay, value)
		case "doubleclick", "double_click":
			setMillis(&config.DoubleClick, value)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func setPositiveInt(dst *int, value string) {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		*dst = n
	}
}

func setMillis(dst *time.Duration, value string) {
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		*dst = time.Duration(n) * time.Millisecond
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// listDirectory is where the open dialog looks for saved files.
func (c *Config) listDirectory() string {
	if c.SaveDirectory != "" {
		return c.SaveDirectory
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return "."
}
