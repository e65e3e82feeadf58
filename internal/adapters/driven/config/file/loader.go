package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "coursesched.toml"

// DefaultEnvFile is the dotenv file read when present.
const DefaultEnvFile = ".env"

// Environment variables that override the config file.
const (
	EnvInputDir    = "COURSESCHED_INPUT_DIR"
	EnvOutput      = "COURSESCHED_OUTPUT"
	EnvFormats     = "COURSESCHED_FORMATS"
	EnvCourseCodes = "COURSESCHED_COURSE_CODES"
	EnvTableID     = "COURSESCHED_TABLE_ID"
	EnvContainerID = "COURSESCHED_CONTAINER_ID"
	EnvEncoding    = "COURSESCHED_ENCODING"
)

// Ensure Loader implements the interface.
var _ driven.ConfigLoader = (*Loader)(nil)

// Loader reads configuration from a TOML file and the environment.
type Loader struct {
	path     string
	explicit bool
	envFile  string
	lookup   func(string) (string, bool)
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvFile sets the dotenv file. An empty name disables it.
func WithEnvFile(name string) Option {
	return func(l *Loader) { l.envFile = name }
}

// WithLookup replaces os.LookupEnv, mainly for tests.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookup = lookup }
}

// NewLoader creates a loader for path. An empty path uses DefaultPath and
// tolerates its absence; an explicit path must exist.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path:     path,
		explicit: path != "",
		envFile:  DefaultEnvFile,
		lookup:   os.LookupEnv,
	}
	if l.path == "" {
		l.path = DefaultPath
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the defaults overlaid with the file and the environment.
func (l *Loader) Load() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := l.loadFile(&cfg); err != nil {
		return domain.Config{}, err
	}

	env, err := l.environment()
	if err != nil {
		return domain.Config{}, err
	}
	applyEnv(&cfg, env)

	return cfg, nil
}

func (l *Loader) loadFile(cfg *domain.Config) error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !l.explicit {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", l.path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: config %s: %s", domain.ErrInvalidInput, l.path, strict.String())
		}
		return fmt.Errorf("%w: config %s: %v", domain.ErrInvalidInput, l.path, err)
	}
	return nil
}

// environment returns a lookup over the process environment, falling back
// to the dotenv file. Process variables win, as with godotenv.Load.
func (l *Loader) environment() (func(string) (string, bool), error) {
	fileVars := map[string]string{}
	if l.envFile != "" {
		vars, err := godotenv.Read(l.envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", l.envFile, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *domain.Config, env func(string) (string, bool)) {
	if v, ok := env(EnvInputDir); ok && v != "" {
		cfg.Input.Dir = v
		cfg.Input.Files = nil
	}
	if v, ok := env(EnvOutput); ok && v != "" {
		cfg.Output.Path = v
	}
	if v, ok := env(EnvFormats); ok {
		if formats := SplitList(v); len(formats) > 0 {
			cfg.Output.Formats = formats
		}
	}
	if v, ok := env(EnvCourseCodes); ok {
		cfg.Filter.CourseCodes = SplitList(v)
	}
	if v, ok := env(EnvTableID); ok && v != "" {
		cfg.Table.ID = v
	}
	if v, ok := env(EnvContainerID); ok {
		cfg.Table.ContainerID = v
	}
	if v, ok := env(EnvEncoding); ok && v != "" {
		cfg.Input.Encoding = v
	}
}

// SplitList splits a comma-separated value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WriteDefault writes the built-in configuration to path.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	data, err := toml.Marshal(domain.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s already exists", domain.ErrInvalidInput, path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
