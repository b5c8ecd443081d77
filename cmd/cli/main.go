package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dualstream-cli",
		Short: "DualStream CLI tool",
		Long:  `A command line interface for interacting with the DualStream ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the DualStream API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (when auth is enabled)")

	rootCmd.AddCommand(documentCmd())
	rootCmd.AddCommand(walletCmd())
	rootCmd.AddCommand(transactionCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(investmentCmd())
	rootCmd.AddCommand(goalCmd())
	rootCmd.AddCommand(budgetCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func documentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Document operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Fetch the full finance document",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/document", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check document consistency",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/document/consistency", nil)
		},
	})

	return cmd
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wallets",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/wallets", nil)
		},
	})

	var name, icon, currency, balance string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a wallet",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/wallets", map[string]any{
				"name":     name,
				"balance":  jsonNumber(balance),
				"icon":     icon,
				"currency": currency,
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Wallet name")
	addCmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	addCmd.Flags().StringVar(&icon, "icon", "Wallet", "Icon name")
	addCmd.Flags().StringVar(&currency, "currency", "PKR", "Currency code")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	var upName, upIcon, upCurrency, upBalance string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{}
			if upName != "" {
				body["name"] = upName
			}
			if upIcon != "" {
				body["icon"] = upIcon
			}
			if upCurrency != "" {
				body["currency"] = upCurrency
			}
			if upBalance != "" {
				body["balance"] = jsonNumber(upBalance)
			}
			doJSON(http.MethodPatch, "/api/v1/wallets/"+args[0], body)
		},
	}
	updateCmd.Flags().StringVar(&upName, "name", "", "Wallet name")
	updateCmd.Flags().StringVar(&upBalance, "balance", "", "Balance override")
	updateCmd.Flags().StringVar(&upIcon, "icon", "", "Icon name")
	updateCmd.Flags().StringVar(&upCurrency, "currency", "", "Currency code")
	cmd.AddCommand(updateCmd)

	var confirm bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wallet (its transactions are kept)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/wallets/" + args[0]
			if confirm {
				path += "?confirm=true"
			}
			doJSON(http.MethodDelete, path, nil)
		},
	}
	deleteCmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/transactions", nil)
		},
	})

	var walletID, amount, txType, subCategory, description, projectTag, date, notes string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"wallet_id":    walletID,
				"amount":       jsonNumber(amount),
				"type":         txType,
				"sub_category": subCategory,
				"description":  description,
				"project_tag":  projectTag,
			}
			if date != "" {
				body["date"] = date
			}
			if notes != "" {
				body["notes"] = notes
			}
			doJSON(http.MethodPost, "/api/v1/transactions", body)
		},
	}
	addCmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	addCmd.Flags().StringVar(&amount, "amount", "", "Amount (positive)")
	addCmd.Flags().StringVar(&txType, "type", "Expense", "Income or Expense")
	addCmd.Flags().StringVar(&subCategory, "category", "Personal", "Personal or Business")
	addCmd.Flags().StringVar(&description, "description", "", "Description")
	addCmd.Flags().StringVar(&projectTag, "project", "General", "Project tag")
	addCmd.Flags().StringVar(&date, "date", "", "Date (yyyy-mm-dd, defaults to today)")
	addCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	addCmd.MarkFlagRequired("wallet")
	addCmd.MarkFlagRequired("amount")
	cmd.AddCommand(addCmd)

	return cmd
}

func transferCmd() *cobra.Command {
	var from, to, amount string
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between wallets",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/transfers", map[string]any{
				"from_wallet_id": from,
				"to_wallet_id":   to,
				"amount":         jsonNumber(amount),
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source wallet ID")
	cmd.Flags().StringVar(&to, "to", "", "Destination wallet ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to move")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project operations",
	}

	var storeName, notes, comments, date, services string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/projects", map[string]any{
				"storeName":        storeName,
				"notes":            notes,
				"comments":         comments,
				"date":             date,
				"servicesRequired": services,
			})
		},
	}
	addCmd.Flags().StringVar(&storeName, "store", "", "Store name")
	addCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	addCmd.Flags().StringVar(&comments, "comments", "", "Comments")
	addCmd.Flags().StringVar(&date, "date", "", "Date (yyyy-mm-dd)")
	addCmd.Flags().StringVar(&services, "services", "", "Services required")
	addCmd.MarkFlagRequired("store")
	cmd.AddCommand(addCmd)

	return cmd
}

func investmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investment",
		Short: "Investment operations",
	}

	var assetName, invType, platform, quantity, value, date string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an investment",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/investments", map[string]any{
				"assetName": assetName,
				"type":      invType,
				"platform":  platform,
				"quantity":  jsonNumber(quantity),
				"valuePKR":  jsonNumber(value),
				"date":      date,
			})
		},
	}
	addCmd.Flags().StringVar(&assetName, "asset", "", "Asset name")
	addCmd.Flags().StringVar(&invType, "type", "Other", "Crypto, Gold, Stock or Other")
	addCmd.Flags().StringVar(&platform, "platform", "", "Platform holding the asset")
	addCmd.Flags().StringVar(&quantity, "quantity", "0", "Quantity held")
	addCmd.Flags().StringVar(&value, "value", "0", "Current value in PKR")
	addCmd.Flags().StringVar(&date, "date", "", "Date (yyyy-mm-dd)")
	addCmd.MarkFlagRequired("asset")
	cmd.AddCommand(addCmd)

	return cmd
}

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Savings goal operations",
	}

	var name, target, current, deadline string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/goals", map[string]any{
				"name":           name,
				"target_amount":  jsonNumber(target),
				"current_amount": jsonNumber(current),
				"deadline":       deadline,
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Goal name")
	addCmd.Flags().StringVar(&target, "target", "0", "Target amount")
	addCmd.Flags().StringVar(&current, "current", "0", "Current amount")
	addCmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (yyyy-mm-dd)")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	var upTarget, upCurrent, upName, upDeadline string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a savings goal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{}
			if upName != "" {
				body["name"] = upName
			}
			if upTarget != "" {
				body["target_amount"] = jsonNumber(upTarget)
			}
			if upCurrent != "" {
				body["current_amount"] = jsonNumber(upCurrent)
			}
			if upDeadline != "" {
				body["deadline"] = upDeadline
			}
			doJSON(http.MethodPatch, "/api/v1/goals/"+args[0], body)
		},
	}
	updateCmd.Flags().StringVar(&upName, "name", "", "Goal name")
	updateCmd.Flags().StringVar(&upTarget, "target", "", "Target amount")
	updateCmd.Flags().StringVar(&upCurrent, "current", "", "Current amount")
	updateCmd.Flags().StringVar(&upDeadline, "deadline", "", "Deadline (yyyy-mm-dd)")
	cmd.AddCommand(updateCmd)

	return cmd
}

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPut, "/api/v1/budget", map[string]any{
				"budget": jsonNumber(args[0]),
			})
		},
	})

	return cmd
}

func exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a backup of the finance document",
		Run: func(cmd *cobra.Command, args []string) {
			body, status := request(http.MethodGet, "/api/v1/export", nil)
			if status != http.StatusOK {
				fmt.Printf("Export failed (Status: %d)\nResponse: %s\n", status, string(body))
				os.Exit(1)
			}
			if output == "" {
				fmt.Println(string(body))
				return
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				fmt.Printf("Failed to write backup: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Backup written to %s\n", output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write backup to file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore the finance document from a backup file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Printf("Failed to read backup: %v\n", err)
				os.Exit(1)
			}
			path := "/api/v1/import"
			if confirm {
				path += "?confirm=true"
			}
			body, status := request(http.MethodPost, path, data)
			fmt.Printf("Status: %d\n%s\n", status, string(body))
			if status >= 400 {
				os.Exit(1)
			}
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the overwrite")
	return cmd
}

// jsonNumber keeps decimal strings as JSON numbers on the wire.
func jsonNumber(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("0")
	}
	return json.RawMessage(s)
}

func doJSON(method, path string, body map[string]any) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
	}

	respBody, status := request(method, path, payload)

	if status >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(respBody))
		os.Exit(1)
	}

	if len(respBody) == 0 {
		fmt.Printf("OK (Status: %d)\n", status)
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		fmt.Println(string(respBody))
		return
	}
	fmt.Println(pretty.String())
}

func request(method, path string, payload []byte) ([]byte, int) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}
