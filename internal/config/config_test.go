package config

import (
	"os"
	"testing"

	"github.com/zapponejosh/koyomi/internal/holiday"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.TargetYear != DefaultTargetYear {
		t.Errorf("TargetYear = %d, want %d", cfg.TargetYear, DefaultTargetYear)
	}
	if cfg.OutputDir != "cal_svgs_2026" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "cal_svgs_2026")
	}
	if cfg.HolidayURL != holiday.DefaultURL {
		t.Errorf("HolidayURL = %q, want %q", cfg.HolidayURL, holiday.DefaultURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("TARGET_YEAR", "2027")
	os.Setenv("OUTPUT_DIR", "/tmp/pages")
	os.Setenv("HOLIDAY_URL", "http://localhost:9999/date.json")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TargetYear != 2027 {
		t.Errorf("TargetYear = %d, want 2027", cfg.TargetYear)
	}
	if cfg.OutputDir != "/tmp/pages" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/pages")
	}
	if cfg.HolidayURL != "http://localhost:9999/date.json" {
		t.Errorf("HolidayURL = %q, want %q", cfg.HolidayURL, "http://localhost:9999/date.json")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_DerivedOutputDirFollowsYear(t *testing.T) {
	clearEnv()

	os.Setenv("TARGET_YEAR", "2030")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OutputDir != "cal_svgs_2030" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "cal_svgs_2030")
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				TargetYear: 2026,
				OutputDir:  "cal_svgs_2026",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: false,
		},
		{
			name: "year too far in the past",
			config: Config{
				TargetYear: 1600,
				OutputDir:  "out",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "year too far in the future",
			config: Config{
				TargetYear: 3000,
				OutputDir:  "out",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "empty output dir",
			config: Config{
				TargetYear: 2026,
				OutputDir:  "",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "empty holiday URL",
			config: Config{
				TargetYear: 2026,
				OutputDir:  "out",
				HolidayURL: "",
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				TargetYear: 2026,
				OutputDir:  "out",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "verbose", // Not valid
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				TargetYear: 2026,
				OutputDir:  "out",
				HolidayURL: holiday.DefaultURL,
				LogLevel:   "info",
				LogFormat:  "xml", // Not valid
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearEnv() {
	os.Unsetenv("TARGET_YEAR")
	os.Unsetenv("OUTPUT_DIR")
	os.Unsetenv("HOLIDAY_URL")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}
