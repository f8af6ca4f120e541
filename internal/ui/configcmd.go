package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rutina/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Schedule.EarlyCutoff = promptValue(reader, "Overnight early cutoff", cfg.Schedule.EarlyCutoff)
	cfg.Schedule.LateCutoff = promptValue(reader, "Overnight late cutoff", cfg.Schedule.LateCutoff)
	cfg.Schedule.RespectFixedAnchors = promptBool(reader, "Respect fixed anchors", cfg.Schedule.RespectFixedAnchors)
	cfg.Limits.MinTaskMinutes = promptInt(reader, "Min manual task minutes", cfg.Limits.MinTaskMinutes)
	cfg.Limits.MaxTaskMinutes = promptInt(reader, "Max manual task minutes", cfg.Limits.MaxTaskMinutes)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptValue(reader, "UI theme (green, mono)", cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[durations]")
	fmt.Printf("  breakfast             = %d\n", cfg.Durations.Breakfast)
	fmt.Printf("  dinner                = %d\n", cfg.Durations.Dinner)
	fmt.Printf("  jogging               = %d\n", cfg.Durations.Jogging)
	fmt.Printf("  meditation            = %d\n", cfg.Durations.Meditation)
	fmt.Printf("  reading               = %d\n", cfg.Durations.Reading)
	fmt.Printf("  morning_default       = %d\n", cfg.Durations.MorningDefault)
	fmt.Printf("  evening_default       = %d\n", cfg.Durations.EveningDefault)
	fmt.Println("\n[limits]")
	fmt.Printf("  min_task_minutes      = %d\n", cfg.Limits.MinTaskMinutes)
	fmt.Printf("  max_task_minutes      = %d\n", cfg.Limits.MaxTaskMinutes)
	fmt.Println("\n[schedule]")
	fmt.Printf("  early_cutoff          = %s\n", cfg.Schedule.EarlyCutoff)
	fmt.Printf("  late_cutoff           = %s\n", cfg.Schedule.LateCutoff)
	fmt.Printf("  respect_fixed_anchors = %t\n", cfg.Schedule.RespectFixedAnchors)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path               = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme                 = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	value := promptValue(reader, label, strconv.FormatBool(current))
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return current
	}
	return b
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	value := promptValue(reader, label, strconv.Itoa(current))
	n, err := strconv.Atoi(value)
	if err != nil {
		return current
	}
	return n
}
