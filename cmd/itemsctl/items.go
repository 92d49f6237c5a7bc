package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/itemsdemo/services/item/client"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := opts.manager(cmd)
			if err := m.Load(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", client.MsgLoadFailed, err)
			}
			m.SetSearch(search)
			return writeItems(cmd.OutOrStdout(), m.Visible(), opts.jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive name filter")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := opts.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeItem(cmd.OutOrStdout(), item, opts.jsonOutput)
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var form client.Form
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := opts.manager(cmd)
			m.SetForm(form)
			created, err := m.Submit(cmd.Context())
			if errors.Is(err, client.ErrSubmitDisabled) {
				return errors.New("name and description must not be blank")
			}
			if created.ID == 0 {
				return fmt.Errorf("%s: %w", client.MsgCreateFailed, err)
			}
			// a failed refresh after the create is logged by the manager
			return writeItem(cmd.OutOrStdout(), created, opts.jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&form.Name, "name", "n", "", "Item name")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "Item description")
	return cmd
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name and/or description of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
				return errors.New("nothing to change: pass --name and/or --description")
			}

			m := opts.manager(cmd)
			current, err := opts.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			m.StartEdit(current)
			form := m.Snapshot().EditForm
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("description") {
				form.Description = description
			}
			m.SetEditForm(form)

			updated, err := m.SubmitEdit(cmd.Context())
			if errors.Is(err, client.ErrSubmitDisabled) {
				return errors.New("name and description must not be blank")
			}
			if updated.ID == 0 {
				return fmt.Errorf("%s: %w", client.MsgUpdateFailed, err)
			}
			return writeItem(cmd.OutOrStdout(), updated, opts.jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "New item name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New item description")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.manager(cmd).Delete(cmd.Context(), id); err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"deleted": id})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", id)
			return err
		},
	}
}

func newExternalCmd(opts *rootOptions) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "external",
		Short: "List the read-only external items, optionally filtered by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().ExternalItems(cmd.Context())
			if err != nil {
				return err
			}
			items = client.Filter(items, search, func(it client.ExternalItem) string { return it.Title })
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No items found")
				return err
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n    %s\n", it.ID, it.Title, it.Body)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive title filter")
	return cmd
}
