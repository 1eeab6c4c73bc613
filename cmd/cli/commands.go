package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	metricFlag string
	limitFlag  int
	fromFlag   string
	toFlag     string
)

func init() {
	leaderboardCmd.Flags().StringVar(&metricFlag, "metric", "goals", "The ranking metric (goals, assists, contributions)")
	leaderboardCmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum number of rows (0 means all)")
	recordCmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	recordCmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, inclusive)")
	historyCmd.Flags().StringVar(&fromFlag, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	historyCmd.Flags().StringVar(&toFlag, "to", "", "End date (YYYY-MM-DD, inclusive)")
	historyCmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum number of rows (0 means all)")
	totalsCmd.Flags().Int64Var(&playerIDFlag, "player", 0, "The player id")
	totalsCmd.MarkFlagRequired("player")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var playerIDFlag int64

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players on the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the scheduled and played matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches", nil)
	},
}

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show the career totals for one player",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("player_id", fmt.Sprint(playerIDFlag))
		return performGetRequest("/reports/totals", params)
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the player ranking for a metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("metric", metricFlag)
		if limitFlag > 0 {
			params.Set("limit", fmt.Sprint(limitFlag))
		}
		return performGetRequest("/reports/leaderboard", params)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Show the team's W/D/L record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/reports/record", rangeParams())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the match history, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := rangeParams()
		if limitFlag > 0 {
			params.Set("limit", fmt.Sprint(limitFlag))
		}
		return performGetRequest("/reports/history", params)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func rangeParams() url.Values {
	params := url.Values{}
	if fromFlag != "" {
		params.Set("from", fromFlag)
	}
	if toFlag != "" {
		params.Set("to", toFlag)
	}
	return params
}

func performGetRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest("GET", target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if password != "" {
		req.Header.Set("Authorization", "Bearer "+password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
