package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/model"
	"github.com/edvin/accountdesk/internal/platform"
)

type seedAccount struct {
	username string
	email    string
	status   model.Status
	country  string
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("Seeding dashboard database...")

	fmt.Println("  Inserting admin user...")
	passwordHash, err := core.HashPassword("password")
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO admin_users (id, username, password_hash) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING`,
		platform.NewID(), "admin", passwordHash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insert admin user: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("  Inserting sample accounts...")
	accounts := sampleAccounts()
	for _, a := range accounts {
		_, err = pool.Exec(ctx,
			`INSERT INTO accounts (username, email, status, country) VALUES ($1, $2, $3, $4)`,
			a.username, a.email, a.status, a.country)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert account %s: %v\n", a.username, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println("Seed complete!")
	fmt.Println()
	fmt.Printf("  Inserted %d accounts across all statuses.\n", len(accounts))
	fmt.Println("  Login: admin / password")
}

// sampleAccounts spreads a few dozen accounts over every status so the
// dashboard cards, filter and pagination all have something to show.
func sampleAccounts() []seedAccount {
	countries := []string{"NO", "SE", "DK", "DE", "US", "GB"}
	perStatus := map[model.Status]int{
		model.StatusNew:     25,
		model.StatusVerify:  4,
		model.StatusDisable: 2,
		model.StatusError:   3,
		model.StatusRunning: 6,
		model.StatusGood:    12,
		model.StatusSold:    5,
	}

	var accounts []seedAccount
	i := 0
	for _, status := range model.AllStatuses {
		for n := 0; n < perStatus[status]; n++ {
			i++
			accounts = append(accounts, seedAccount{
				username: fmt.Sprintf("user%03d", i),
				email:    fmt.Sprintf("user%03d@example.test", i),
				status:   status,
				country:  countries[i%len(countries)],
			})
		}
	}
	return accounts
}
