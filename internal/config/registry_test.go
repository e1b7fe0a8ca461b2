package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "biollante") {
		t.Errorf("GetConfigDir() = %v, should contain 'biollante'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	default:
		if configDir != filepath.Join("/tmp/xdg-test", "biollante") {
			t.Errorf("GetConfigDir() = %v, want /tmp/xdg-test/biollante", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Server == nil || reg.Server.Endpoint != DefaultEndpoint {
		t.Errorf("NewRegistry().Server = %+v, want endpoint %s", reg.Server, DefaultEndpoint)
	}
	if reg.Server.TimeoutSeconds != 0 {
		t.Errorf("NewRegistry().Server.TimeoutSeconds = %v, want 0", reg.Server.TimeoutSeconds)
	}
	if reg.Logging == nil || reg.Logging.Level != "" {
		t.Errorf("NewRegistry().Logging = %+v, want silent", reg.Logging)
	}
	if reg.Jobs == nil {
		t.Error("NewRegistry().Jobs should not be nil")
	}
}

func TestRegistryEnsureJob(t *testing.T) {
	reg := NewRegistry()

	job1 := reg.EnsureJob("http://a/interactive/1/")
	if job1 == nil {
		t.Fatal("EnsureJob() returned nil")
	}

	if job2 := reg.EnsureJob("http://a/interactive/1/"); job1 != job2 {
		t.Error("EnsureJob() should return same instance for same endpoint")
	}

	if job3 := reg.EnsureJob("http://a/interactive/2/"); job1 == job3 {
		t.Error("EnsureJob() should create new instance for different endpoint")
	}
}

func TestRegistryRecordSubmission(t *testing.T) {
	reg := NewRegistry()
	endpoint := "http://a/interactive/1/"

	before := time.Now()
	reg.RecordSubmission(endpoint, 200)
	after := time.Now()

	job := reg.GetJob(endpoint)
	if job == nil {
		t.Fatal("job should exist after RecordSubmission()")
	}
	if job.Submissions != 1 {
		t.Errorf("Submissions = %d, want 1", job.Submissions)
	}
	if job.LastUsed.Before(before) || job.LastUsed.After(after) {
		t.Errorf("LastUsed = %v, should be between %v and %v", job.LastUsed, before, after)
	}

	lastUsed := job.LastUsed
	reg.RecordSubmission(endpoint, 500)
	if job.Submissions != 1 {
		t.Errorf("Submissions = %d after rejected submit, want 1", job.Submissions)
	}
	if job.LastStatus != 500 {
		t.Errorf("LastStatus = %d, want 500", job.LastStatus)
	}
	if !job.LastUsed.Equal(lastUsed) {
		t.Error("LastUsed should not move on a rejected submit")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Server.Endpoint = "http://rodan.local/interactive/abc/"
	reg.Server.TimeoutSeconds = 30
	reg.Logging.Level = "debug"
	reg.Wizard.StartTab = "tab-mutation"
	reg.SetJobNickname(reg.Server.Endpoint, "Staff notation run")

	if err := reg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# biollante-cfg configuration file") {
		t.Error("saved config should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Server.Endpoint != "http://rodan.local/interactive/abc/" {
		t.Errorf("Endpoint = %s, want http://rodan.local/interactive/abc/", loaded.Server.Endpoint)
	}
	if loaded.Server.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", loaded.Server.TimeoutSeconds)
	}
	if loaded.Wizard.StartTab != "tab-mutation" {
		t.Errorf("StartTab = %s, want tab-mutation", loaded.Wizard.StartTab)
	}
	if job := loaded.GetJob("http://rodan.local/interactive/abc/"); job == nil || job.Nickname != "Staff notation run" {
		t.Errorf("job = %+v, want nickname 'Staff notation run'", job)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		content    string
		wantErr    bool
		wantServer string
	}{
		{
			name:       "partial file gets defaults",
			content:    "version: 1\nlogging:\n  level: info\n",
			wantServer: DefaultEndpoint,
		},
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: "version: [1\n",
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "config"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			reg, err := LoadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if reg.Server.Endpoint != tt.wantServer {
				t.Errorf("Endpoint = %s, want %s", reg.Server.Endpoint, tt.wantServer)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	reg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if reg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", reg.Version, CurrentVersion)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}
}

func BenchmarkEnsureJob(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnsureJob("http://a/interactive/1/")
	}
}
