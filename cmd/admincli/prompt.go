package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/avolkhin/shopadmin/internal/models"
)

// promptProduct collects the fields of a new product interactively.
func promptProduct(scanner *bufio.Scanner) models.ProductInput {
	var in models.ProductInput

	fmt.Print("Name: ")
	scanner.Scan()
	in.Name = strings.TrimSpace(scanner.Text())

	fmt.Print("SKU: ")
	scanner.Scan()
	in.SKU = strings.TrimSpace(scanner.Text())

	fmt.Print("Description: ")
	scanner.Scan()
	in.Description = strings.TrimSpace(scanner.Text())

	fmt.Print("Price (cents): ")
	scanner.Scan()
	in.PriceCents, _ = strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)

	fmt.Print("Stock: ")
	scanner.Scan()
	in.Stock, _ = strconv.Atoi(strings.TrimSpace(scanner.Text()))

	fmt.Print("Status (active/draft/archived): ")
	scanner.Scan()
	in.Status = strings.TrimSpace(scanner.Text())

	return in
}
