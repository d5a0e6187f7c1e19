package helpers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyConfig(t *testing.T) {
	yes := true
	cfg := Config{
		Version:     "1.20.2",
		Player:      "Alex",
		Text:        "from file",
		Interactive: &yes,
		MetricsAddr: ":9100",
	}
	f := Flags{Version: "1.21.11", Player: "Steve", Text: "from flag", Material: "minecraft:paper"}

	applyConfig(&f, cfg, map[string]bool{"text": true})

	tests := []struct {
		name, got, want string
	}{
		{"Version", f.Version, "1.20.2"},
		{"Player", f.Player, "Alex"},
		{"Text", f.Text, "from flag"},
		{"Material", f.Material, "minecraft:paper"},
		{"MetricsAddr", f.MetricsAddr, ":9100"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if !f.Interactive {
		t.Error("Interactive = false, want true")
	}
	if f.Verbose {
		t.Error("Verbose = true, want unchanged false")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anvil.yaml")
	data := "version: \"1.21.8\"\ntitle: Sign here\nverbose: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f := Flags{Config: path, Version: "1.21.11"}
	if err := LoadConfig(&f); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if f.Version != "1.21.8" || f.Title != "Sign here" || !f.Verbose {
		t.Errorf("LoadConfig() = %+v", f)
	}

	f = Flags{Config: filepath.Join(t.TempDir(), "missing.yaml")}
	if err := LoadConfig(&f); err == nil {
		t.Error("LoadConfig() on a missing file returned nil error")
	}

	if err := LoadConfig(&Flags{}); err != nil {
		t.Errorf("LoadConfig() without a file error = %v", err)
	}
}

func TestMetricsRouter(t *testing.T) {
	s := NewServer(Flags{Version: "1.21.11"}, &bytes.Buffer{})
	r := MetricsRouter(s)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "anvilgui_containers_open") {
		t.Errorf("GET /metrics body lacks anvilgui_containers_open:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /healthz status = %d, want 200", rec.Code)
	}
}
