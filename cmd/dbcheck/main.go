package main

import (
	"flag"
	"fmt"
	"os"

	"groundops.aero/groundops/config"
	"groundops.aero/groundops/core"
)

// Connectivity smoke check: ping the store and dump EmployeeInfo.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	db, err := core.Connect(cfg.DSN, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Fprintf(os.Stderr, "probe query failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Database connection successful! Result: %d\n", result)

	var employees []core.Employee
	if err := db.Find(&employees).Error; err != nil {
		fmt.Fprintf(os.Stderr, "fetch EmployeeInfo failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== EmployeeInfo Table ===")
	for _, emp := range employees {
		fmt.Printf("%s\t%s\n", emp.EmployeeID, emp.Permission)
	}
	fmt.Println("=========================")
}
