package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates new up/down script pairs next to the existing ones.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration writes NNNNNN_name.up.sql and NNNNNN_name.down.sql, where
// NNNNNN is one past the highest existing version.
func (g *Generator) CreateMigration(name string) (up string, down string, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !migrationNamePattern.MatchString(name) {
		return "", "", fmt.Errorf("invalid migration name %q: use lower-case letters, digits and underscores", name)
	}

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	next, err := g.nextVersion()
	if err != nil {
		return "", "", err
	}

	up = filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.up.sql", next, name))
	down = filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.down.sql", next, name))

	if err := os.WriteFile(up, []byte(fmt.Sprintf("-- Migration: %s\n", name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(down, []byte(fmt.Sprintf("-- Rollback: %s\n", name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created",
		"up_file", up,
		"down_file", down)

	return up, down, nil
}

func (g *Generator) nextVersion() (int, error) {
	entries, err := os.ReadDir(g.scriptsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	versions := []int{0}
	for _, e := range entries {
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok || e.IsDir() {
			continue
		}
		if v, err := strconv.Atoi(prefix); err == nil {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	return versions[len(versions)-1] + 1, nil
}
