package helpers

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-mclib/anvilgui/pkg/server"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Flags holds common CLI flags for the demo binaries.
type Flags struct {
	Config      string
	Version     string
	Player      string
	Text        string
	Title       string
	Material    string
	Interactive bool
	Verbose     bool
	MetricsAddr string
}

// Config is the YAML file form of Flags. Empty fields leave the flag alone.
type Config struct {
	Version     string `yaml:"version"`
	Player      string `yaml:"player"`
	Text        string `yaml:"text"`
	Title       string `yaml:"title"`
	Material    string `yaml:"material"`
	Interactive *bool  `yaml:"interactive"`
	Verbose     *bool  `yaml:"verbose"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// RegisterFlags registers the standard CLI flags on the default flag set.
// Defaults come from the environment (ANVIL_*), so call LoadEnv first.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.Config, "c", os.Getenv("ANVIL_CONFIG"), "YAML config file")
	flag.StringVar(&f.Version, "version", envOr("ANVIL_VERSION", "1.21.11"), "server release the adapter is picked for")
	flag.StringVar(&f.Player, "u", envOr("ANVIL_PLAYER", "Steve"), "name of the simulated player")
	flag.StringVar(&f.Text, "text", envOr("ANVIL_TEXT", "Enter a name"), "initial dialog text")
	flag.StringVar(&f.Title, "title", os.Getenv("ANVIL_TITLE"), "window title (empty = vanilla title)")
	flag.StringVar(&f.Material, "material", envOr("ANVIL_MATERIAL", "minecraft:paper"), "item placed in the left input")
	flag.BoolVar(&f.Interactive, "i", false, "interactive mode with the anvil TUI")
	flag.BoolVar(&f.Verbose, "v", false, "log every packet sent to the player")
	flag.StringVar(&f.MetricsAddr, "metrics", os.Getenv("ANVIL_METRICS_ADDR"), "serve Prometheus metrics on this address (empty = off)")
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// LoadEnv reads .env from the working directory if present. Variables already
// set in the environment win.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig applies the YAML file named by f.Config to every flag that was
// not set explicitly on the command line. Call after flag.Parse.
func LoadConfig(f *Flags) error {
	if f.Config == "" {
		return nil
	}
	data, err := os.ReadFile(f.Config)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", f.Config, err)
	}

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	applyConfig(f, cfg, set)
	return nil
}

func applyConfig(f *Flags, cfg Config, set map[string]bool) {
	str := func(name string, dst *string, v string) {
		if !set[name] && v != "" {
			*dst = v
		}
	}
	str("version", &f.Version, cfg.Version)
	str("u", &f.Player, cfg.Player)
	str("text", &f.Text, cfg.Text)
	str("title", &f.Title, cfg.Title)
	str("material", &f.Material, cfg.Material)
	str("metrics", &f.MetricsAddr, cfg.MetricsAddr)

	if !set["i"] && cfg.Interactive != nil {
		f.Interactive = *cfg.Interactive
	}
	if !set["v"] && cfg.Verbose != nil {
		f.Verbose = *cfg.Verbose
	}
}

// NewServer creates a server for the configured release logging to out.
func NewServer(f Flags, out io.Writer) *server.Server {
	return server.New(f.Version, log.New(out, "", log.LstdFlags))
}

// MetricsRouter mounts the server's Prometheus handler at /metrics.
func MetricsRouter(s *server.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// ServeMetrics serves MetricsRouter on f.MetricsAddr in the background. It
// does nothing if no address is configured.
func ServeMetrics(f Flags, s *server.Server) {
	if f.MetricsAddr == "" {
		return
	}
	go func() {
		s.Logger.Printf("metrics: listening on %s", f.MetricsAddr)
		if err := http.ListenAndServe(f.MetricsAddr, MetricsRouter(s)); err != nil {
			s.Logger.Println("metrics:", err)
		}
	}()
}
