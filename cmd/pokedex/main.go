// Package main is the entry point for the pokedex CLI
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	redisAddr  string
	apiBaseURL string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Offline-first Pokédex over the local cache",
	Long: `pokedex loads Pokémon resources through the cache-first repository:
cached entries are served from the local Redis store, misses are fetched
from the remote API and written through.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", envOr("POKEAPI_BASE_URL", ""), "API base URL (empty for the default)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(refreshCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
