// Package main is the admin dashboard's command-line front end: an
// interactive shell over the API client covering catalog, orders,
// uploads, and the stats overview.
package main

import (
	"bufio"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/avolkhin/shopadmin/internal/client"
	"github.com/avolkhin/shopadmin/internal/config"
	"github.com/avolkhin/shopadmin/internal/models"
	"github.com/avolkhin/shopadmin/internal/session"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// repl runs the interactive shell loop, dispatching admin commands to
// the API client.
func repl(api *client.Client) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("shopadmin> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		ctx := context.Background()
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, login <email> <password>, logout, whoami,")
			fmt.Println("  products [page], product <id>, add-product, rm-product <id>,")
			fmt.Println("  orders [status], order <id>, ship <id> <carrier> <tracking#>,")
			fmt.Println("  upload <file> [file...], rm-image <id>, dashboard, exit")
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <email> <password>")
				continue
			}
			user, err := api.Login(ctx, args[1], args[2])
			if err != nil {
				fmt.Println("login failed:", client.Message(err))
				continue
			}
			fmt.Println("logged in as", user.Email)
		case "logout":
			if err := api.Logout(); err != nil {
				fmt.Println("logout failed:", err)
				continue
			}
			fmt.Println("logged out")
		case "whoami":
			user, err := api.CurrentUser(ctx)
			if err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			printJSON(user)
		case "products":
			params := client.ProductListParams{}
			if len(args) > 1 {
				params.Page, _ = strconv.Atoi(args[1])
			}
			list, err := api.GetProducts(ctx, params)
			if err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			printJSON(list)
		case "product":
			if len(args) < 2 {
				fmt.Println("Usage: product <id>")
				continue
			}
			p, err := api.GetProduct(ctx, args[1])
			if err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			printJSON(p)
		case "add-product":
			in := promptProduct(scanner)
			p, err := api.CreateProduct(ctx, in)
			if err != nil {
				printFailure(err)
				continue
			}
			fmt.Println("created product", p.ID)
		case "rm-product":
			if len(args) < 2 {
				fmt.Println("Usage: rm-product <id>")
				continue
			}
			if err := api.DeleteProduct(ctx, args[1]); err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			fmt.Println("product deleted")
		case "orders":
			params := client.OrderListParams{}
			if len(args) > 1 {
				params.Status = args[1]
			}
			list, err := api.GetOrders(ctx, params)
			if err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			printJSON(list)
		case "order":
			if len(args) < 2 {
				fmt.Println("Usage: order <id>")
				continue
			}
			o, err := api.GetOrder(ctx, args[1])
			if err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			printJSON(o)
		case "ship":
			if len(args) < 4 {
				fmt.Println("Usage: ship <id> <carrier> <tracking#>")
				continue
			}
			tracking := &models.Tracking{Carrier: args[2], TrackingNumber: args[3]}
			o, err := api.UpdateOrderStatus(ctx, args[1], models.OrderShipped, tracking)
			if err != nil {
				printFailure(err)
				continue
			}
			fmt.Printf("order %s is now %s\n", o.ID, o.Status)
		case "upload":
			if len(args) < 2 {
				fmt.Println("Usage: upload <file> [file...]")
				continue
			}
			uploadFiles(ctx, api, args[1:])
		case "rm-image":
			if len(args) < 2 {
				fmt.Println("Usage: rm-image <id>")
				continue
			}
			if err := api.DeleteImage(ctx, args[1]); err != nil {
				fmt.Println(client.Message(err))
				continue
			}
			fmt.Println("image deleted")
		case "dashboard":
			showDashboard(ctx, api)
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// printFailure shows the failure message plus per-field errors, if any.
func printFailure(err error) {
	fmt.Println(client.Message(err))
	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		for _, fe := range apiErr.FieldErrors {
			fmt.Printf("  %s: %s\n", fe.Field(), fe.Message)
		}
	}
}

// uploadFiles picks the single- or multi-file endpoint depending on
// how many paths were given.
func uploadFiles(ctx context.Context, api *client.Client, paths []string) {
	files := make([]client.File, 0, len(paths))
	handles := make([]*os.File, 0, len(paths))
	defer func() {
		for _, h := range handles {
			_ = h.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			fmt.Println("cannot open", p, ":", err)
			return
		}
		handles = append(handles, f)
		// The server wants a bare filename, not the local path.
		files = append(files, client.File{Name: filepath.Base(p), Reader: f})
	}

	if len(files) == 1 {
		img, err := api.UploadImage(ctx, files[0].Name, files[0].Reader)
		if err != nil {
			fmt.Println(client.Message(err))
			return
		}
		fmt.Println("uploaded:", img.URL)
		return
	}

	batch, err := api.UploadImages(ctx, files)
	if err != nil {
		fmt.Println(client.Message(err))
		return
	}
	for _, u := range batch.URLs {
		fmt.Println("uploaded:", u)
	}
}

// main parses command-line flags and starts the shell.
func main() {
	var showVer bool
	flag.BoolVar(&showVer, "version", false, "show build version and date")

	// config.Parse calls flag.Parse, picking up the flag above too.
	options := config.Parse()

	if showVer {
		fmt.Printf("shopadmin CLI\nVersion: %s\nBuild Date: %s\n",
			cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
		return
	}

	store := session.NewFileStore(options.SessionFile)
	api := client.New(options.BaseURL, store,
		client.WithSessionInvalidatedHook(func() {
			fmt.Println("session expired, please log in again")
		}),
	)

	if api.IsAuthenticated() {
		fmt.Println("using stored session from", options.SessionFile)
	}
	repl(api)
}
