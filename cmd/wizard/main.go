package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
	"github.com/calmtree/profilewizard-backend/internal/clients/onboarding"
	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
	"github.com/calmtree/profilewizard-backend/internal/wizard"
)

// Terminal walkthrough of the onboarding wizard against a running API
// server. Commands: next, prev, jump <id>, done, skip, status, quit.
func main() {
	_ = godotenv.Load()

	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	fragment := flag.String("fragment", "", "deep link fragment, e.g. #step-7")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	token := strings.TrimSpace(os.Getenv("WIZARD_TOKEN"))
	client := onboarding.New(*baseURL, token, log)
	nav := wizard.NewNavigatorFromFragment(*fragment)

	ctx := context.Background()
	rows, err := client.Load(ctx)
	if err != nil {
		fmt.Printf("Could not load progress: %v\n", err)
		os.Exit(1)
	}
	if token == "" {
		fmt.Println("No WIZARD_TOKEN set; progress will not be saved.")
	}

	printStep(nav, rows)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "next":
			nav.Next()
		case "prev":
			nav.Prev()
		case "jump":
			if len(fields) < 2 {
				fmt.Println("usage: jump <step id>")
				continue
			}
			id, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				fmt.Println("usage: jump <step id>")
				continue
			}
			nav.JumpTo(id)
		case "done", "skip":
			status := types.StatusCompleted
			if fields[0] == "skip" {
				status = types.StatusSkipped
			}
			row, upErr := client.Update(ctx, nav.Current().ID, status)
			if upErr != nil {
				fmt.Printf("Could not save progress: %v\n", upErr)
				continue
			}
			fmt.Printf("Saved: step %d is %s\n", row.StepID, row.Status)
			if !nav.AtFinal() {
				nav.Next()
			}
		case "status":
			// nothing extra, the re-print below shows it
		case "quit", "exit":
			return
		default:
			fmt.Println("commands: next, prev, jump <id>, done, skip, status, quit")
			continue
		}
		rows, err = client.Load(ctx)
		if err != nil {
			fmt.Printf("Could not load progress: %v\n", err)
		}
		printStep(nav, rows)
	}
}

func printStep(nav *wizard.Navigator, rows []*types.StepProgress) {
	step := nav.Current()
	fmt.Printf("\n[%d/%d] %s (%s)\n", step.ID, catalog.Count(), step.Title, step.Type)
	fmt.Println(step.Description)
	if mark := statusFor(rows, step.ID); mark != "" {
		fmt.Printf("status: %s\n", mark)
	}
	if nav.AtFinal() {
		fmt.Println("This is the last step.")
	}
}

func statusFor(rows []*types.StepProgress, stepID int) string {
	for _, row := range rows {
		if row != nil && row.StepID == stepID {
			return row.Status
		}
	}
	return ""
}
