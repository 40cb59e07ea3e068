package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"reldb/cmd/web"
	"reldb/database"
	"reldb/executor"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "reldb",
	Short: "A minimal relational data engine",
	Long: `reldb stores named tables of typed rows in per-table JSON artifacts,
enforces PRIMARY KEY and UNIQUE constraints, maintains hash indexes, and
executes CRUD operations plus single-condition inner joins.

Without a subcommand it starts the interactive REPL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the interactive REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		return runServer(addr)
	},
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	defaultData := os.Getenv("RELDB_DATA")
	if defaultData == "" {
		defaultData = "data"
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultData, "Data directory for table artifacts")
	serveCmd.Flags().String("addr", ":8000", "Listen address for the HTTP API")
	rootCmd.AddCommand(replCmd, serveCmd)

	return rootCmd.Execute()
}

func runREPL() error {
	db, err := database.New(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	exec := executor.New(db)
	fmt.Println("reldb - Type SQL commands or .exit to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("reldb> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := scanner.Text()

		switch line {
		case "":
			continue
		case ".exit":
			return nil
		case ".tables":
			tables := db.Tables()
			if len(tables) == 0 {
				fmt.Println("Tables: none")
				continue
			}
			fmt.Print("Tables: ")
			for i, name := range tables {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(name)
			}
			fmt.Println()
			continue
		}

		out, err := exec.Execute(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
	return scanner.Err()
}

func runServer(addr string) error {
	db, err := database.New(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	app := web.New(db, dataDir)
	slog.Info("starting HTTP API", "addr", addr, "data", dataDir)
	return http.ListenAndServe(addr, app.Routes())
}
