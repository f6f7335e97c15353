// migrate aplica las migraciones SQL del directorio de migraciones.
//
// Uso: migrate [flags] [up|down] [steps]
// Los archivos siguen la convención NNNN_nombre_up.sql / NNNN_nombre_down.sql;
// up corre en orden ascendente, down en orden descendente.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/dropDatabas3/teamspace/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "configs/config.example.yaml", "Path to YAML config")
		dir        = flag.String("dir", "migrations/postgres", "Migrations directory")
	)
	flag.Parse()

	_ = godotenv.Load()

	action, steps := parseArgs(flag.Args())

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("pgxpool: %v", err)
	}
	defer pool.Close()

	if err := run(ctx, pool, *dir, action, steps); err != nil {
		log.Fatal(err)
	}
}

// parseArgs interpreta los argumentos posicionales [action] [steps].
// Default: up, todos los archivos.
func parseArgs(args []string) (string, int) {
	action := "up"
	steps := 0
	if len(args) >= 1 && args[0] != "" {
		action = strings.ToLower(args[0])
	}
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			steps = n
		}
	}
	return action, steps
}

func run(ctx context.Context, pool *pgxpool.Pool, dir, action string, steps int) error {
	var suffix string
	switch action {
	case "up":
		suffix = "_up.sql"
	case "down":
		suffix = "_down.sql"
	default:
		return fmt.Errorf("unknown action %q (use: up | down [steps])", action)
	}

	files, err := listSQL(dir, suffix)
	if err != nil {
		return fmt.Errorf("list %s: %w", suffix, err)
	}
	if len(files) == 0 {
		log.Printf("no *%s files in %s, nothing to do", suffix, dir)
		return nil
	}

	sort.Strings(files)
	if action == "down" {
		// down corre de la más nueva a la más vieja
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}
	if steps > 0 && steps < len(files) {
		files = files[:steps]
	}

	log.Printf("applying %d %s migration(s)", len(files), action)
	for _, f := range files {
		if err := execSQLFile(ctx, pool, f); err != nil {
			return fmt.Errorf("exec %s: %w", f, err)
		}
	}
	log.Printf("%s migrations completed", action)
	return nil
}

func listSQL(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), suffix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

func execSQLFile(ctx context.Context, pool *pgxpool.Pool, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	start := time.Now()
	if _, err := pool.Exec(ctx, string(b)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	log.Printf("ok %s (%s)", filepath.Base(path), time.Since(start).Truncate(time.Millisecond))
	return nil
}
