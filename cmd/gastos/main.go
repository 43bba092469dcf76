// cmd/gastos/main.go
//
// gastos is the terminal client for the expense tracker: it fetches the full
// transaction list from the gateway, computes the summary figures locally and
// renders them, and drives the create/delete lifecycle. After every
// successful mutation the whole list is re-fetched; a failed call is logged
// and leaves the last known state alone.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"go-expense-tracker/client"
	"go-expense-tracker/logger"
	"go-expense-tracker/model"
	"go-expense-tracker/summary"
)

func main() {
	godotenv.Load()
	logger.Init()

	c := client.New(os.Getenv("API_URL"))
	formatter := summary.DefaultFormatter()
	ctx := context.Background()

	args := os.Args[1:]
	command := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "list":
		runList(ctx, c, formatter)
	case "add":
		runAdd(ctx, c, formatter, args)
	case "delete":
		runDelete(ctx, c, formatter, args)
	case "health":
		runHealth(ctx, c)
	default:
		fmt.Fprintf(os.Stderr, "usage: gastos [list|add|delete|health] [flags]\n")
		os.Exit(2)
	}
}

func runList(ctx context.Context, c *client.Client, formatter *summary.Formatter) {
	transactions, err := c.ListTransactions(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching transactions")
		os.Exit(1)
	}
	client.Render(os.Stdout, transactions, time.Now(), formatter)
}

func runAdd(ctx context.Context, c *client.Client, formatter *summary.Formatter, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	txType := fs.String("type", model.TypeExpense, "Transaction type: expense or income")
	amount := fs.Float64("amount", 0, "Amount in currency units")
	description := fs.String("description", "", "What the movement was for")
	dateStr := fs.String("date", model.Today().String(), "Calendar date (YYYY-MM-DD)")
	fs.Parse(args)

	date, err := model.ParseDate(*dateStr)
	if err != nil {
		logger.Log.WithError(err).Error("Error parsing date")
		os.Exit(2)
	}

	a := model.Amount(*amount)
	created, err := c.CreateTransaction(ctx, model.CreateTransactionRequest{
		Type:        *txType,
		Amount:      &a,
		Description: *description,
		Date:        &date,
	})
	if err != nil {
		logger.Log.WithError(err).Error("Error creating transaction")
		os.Exit(1)
	}
	fmt.Printf("Recorded %s %s (id %d)\n", created.Type, formatter.Format(float64(created.Amount)), created.ID)

	refresh(ctx, c, formatter)
}

func runDelete(ctx context.Context, c *client.Client, formatter *summary.Formatter, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "ID of the transaction to delete")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	fs.Parse(args)

	if *id == "" {
		fs.Usage()
		os.Exit(2)
	}

	if !*yes && !confirm(fmt.Sprintf("Delete transaction %s? [y/N]: ", *id)) {
		fmt.Println("Aborted.")
		return
	}

	if err := c.DeleteTransaction(ctx, *id); err != nil {
		logger.Log.WithError(err).Error("Error deleting transaction")
		os.Exit(1)
	}
	fmt.Printf("Deleted transaction %s\n", *id)

	refresh(ctx, c, formatter)
}

func runHealth(ctx context.Context, c *client.Client) {
	status, err := c.Health(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching health")
		os.Exit(1)
	}
	fmt.Printf("status: %s\nstore connected: %t\nhas url: %t\nhas key: %t\n",
		status.Status, status.StoreConnected, status.Env.HasURL, status.Env.HasKey)
	if status.Status != "ok" {
		os.Exit(1)
	}
}

// refresh re-fetches and re-renders after a mutation. A failure here is only
// logged: the mutation already succeeded, the view is just stale.
func refresh(ctx context.Context, c *client.Client, formatter *summary.Formatter) {
	transactions, err := c.ListTransactions(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching transactions")
		return
	}
	fmt.Println()
	client.Render(os.Stdout, transactions, time.Now(), formatter)
}

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
