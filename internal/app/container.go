// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pyframe/shipit/internal/domain"
	"github.com/pyframe/shipit/internal/infra/cleaner"
	"github.com/pyframe/shipit/internal/infra/executor"
	"github.com/pyframe/shipit/internal/infra/pyproject"
	"github.com/pyframe/shipit/internal/infra/repostate"
	"github.com/pyframe/shipit/internal/usecase"
)

// Config holds the application configuration.
type Config struct {
	ProjectDir string // Directory containing pyproject.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor domain.CommandExecutor
	Cleaner  domain.ArtifactCleaner
	Repo     domain.RepoInspector

	// Pointer fields
	Manifest *domain.Manifest
	Logger   *slog.Logger

	// Env holds extra KEY=VALUE entries for the upload subprocesses,
	// read from the project's .env file.
	Env []string

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given project directory.
// The directory must contain pyproject.toml; ErrNoManifest is returned
// before anything else is wired up.
func New(dir string) (*Container, error) {
	if !pyproject.Exists(dir) {
		return nil, domain.ErrNoManifest
	}

	manifest, err := pyproject.NewLoader().Load(dir)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	return &Container{
		Executor: executor.NewClient(),
		Cleaner:  cleaner.NewClient(),
		Repo:     repostate.NewClient(),
		Manifest: manifest,
		Logger:   logger,
		Env:      loadDotEnv(dir),
		Config:   Config{ProjectDir: dir},
	}, nil
}

// loadDotEnv reads KEY=VALUE pairs from the project's .env file so twine
// credentials reach the upload subprocesses. Keys already set in the
// process environment win; a missing or unreadable file contributes
// nothing.
func loadDotEnv(dir string) []string {
	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, key := range keys {
		env = append(env, key+"="+values[key])
	}
	return env
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, exe domain.CommandExecutor, cln domain.ArtifactCleaner, repo domain.RepoInspector, manifest *domain.Manifest, logger *slog.Logger) *Container {
	return &Container{
		Executor: exe,
		Cleaner:  cln,
		Repo:     repo,
		Manifest: manifest,
		Logger:   logger,
		Config:   cfg,
	}
}

// logLevel reads the log level from SHIPIT_LOG_LEVEL.
func logLevel() slog.Level {
	switch os.Getenv("SHIPIT_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UseCase factory methods

// CheckToolsUseCase returns a new CheckTools use case.
func (c *Container) CheckToolsUseCase(out io.Writer) *usecase.CheckTools {
	return usecase.NewCheckTools(c.Executor, c.Manifest.Python, out)
}

// CleanArtifactsUseCase returns a new CleanArtifacts use case.
func (c *Container) CleanArtifactsUseCase(out io.Writer) *usecase.CleanArtifacts {
	return usecase.NewCleanArtifacts(c.Cleaner, out)
}

// BuildPackageUseCase returns a new BuildPackage use case.
// out and errOut are the writers for status lines and subprocess diagnostics.
func (c *Container) BuildPackageUseCase(out, errOut io.Writer) *usecase.BuildPackage {
	return usecase.NewBuildPackage(c.Executor, c.Cleaner, c.Manifest, out, errOut)
}

// PublishPackageUseCase returns a new PublishPackage use case.
func (c *Container) PublishPackageUseCase(out, errOut io.Writer) *usecase.PublishPackage {
	return usecase.NewPublishPackage(c.Executor, c.Manifest, c.Env, out, errOut)
}

// ListDistUseCase returns a new ListDist use case.
func (c *Container) ListDistUseCase() *usecase.ListDist {
	return usecase.NewListDist()
}
