package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghuser/itemsdemo/pkg/config"
	"github.com/ghuser/itemsdemo/pkg/logger"
	"github.com/ghuser/itemsdemo/services/item/client"
	"github.com/ghuser/itemsdemo/services/item/domain/models"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	baseURL    string
	jsonOutput bool
	timeout    time.Duration
	logLevel   string
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.baseURL, client.WithTimeout(o.timeout))
}

func (o *rootOptions) manager(cmd *cobra.Command) *client.Manager {
	log := logger.NewWithWriter(&config.Config{LogLevel: o.logLevel}, cmd.ErrOrStderr())
	return client.NewManager(o.client(), log)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "itemsctl",
		Short: "itemsctl lists, searches and edits items on an items API server",
		Long: `itemsctl talks to the items API over HTTP. Both the enveloped and the plain
response styles are understood.

The server address comes from --base-url or the ITEMS_API_URL environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", envOr("ITEMS_API_URL", client.DefaultBaseURL), "Items API base URL")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("ITEMS_LOG_LEVEL", "error"), "Log level written to stderr")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
		newExternalCmd(opts),
	)
	return cmd
}

func parseID(arg string) (models.ItemID, error) {
	id, ok := models.ParseItemID(arg)
	if !ok {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeItems(w io.Writer, items []models.Item, asJSON bool) error {
	if asJSON {
		return writeJSON(w, items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No items found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", it.ID, it.Name, it.Description)
	}
	return tw.Flush()
}

func writeItem(w io.Writer, item models.Item, asJSON bool) error {
	if asJSON {
		return writeJSON(w, item)
	}
	_, err := fmt.Fprintf(w, "%d  %s\n    %s\n", item.ID, item.Name, item.Description)
	return err
}
