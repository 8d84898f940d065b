package cli

import (
	"fmt"
	"os"

	"github.com/insighteer/relaybot/internal/config"
)

// RunStatus displays the current configuration status with styled output.
// cfg may be nil when loading failed; err carries the validation detail.
func RunStatus(cfg *config.Config, err error) {
	fmt.Println()
	fmt.Println(TitleStyle.Render(fmt.Sprintf("  %s relaybot Status", Logo)))
	fmt.Println()

	fmt.Printf("  %-14s %s  %s\n", ".env", StatusBadge(fileExists(".env")), DimStyle.Render("(optional, real env wins)"))

	if err != nil {
		fmt.Println()
		fmt.Println("  " + ErrStyle.Render(err.Error()))
		fmt.Println()
		return
	}

	fmt.Printf("  %-14s %s\n", "Bot token", StatusBadge(cfg.BotToken != ""))
	fmt.Printf("  %-14s %d\n", "Admin chat", cfg.AdminChatID)
	fmt.Printf("  %-14s %s %s\n", "Daily post", cfg.DailyCron, DimStyle.Render(cfg.DailyTZ))
	fmt.Printf("  %-14s %s\n", "Metrics", metricsBadge(cfg.MetricsAddr))
	fmt.Printf("  %-14s %s / %s\n", "Logging", cfg.LogLevel, cfg.LogFormat)
	fmt.Println()
}

func metricsBadge(addr string) string {
	if addr == "" {
		return DimStyle.Render("disabled")
	}
	return addr
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
