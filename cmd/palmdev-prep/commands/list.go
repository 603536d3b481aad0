package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/sdk"
	"github.com/palmdev/palmdev-prep/pkg/fileutil"
)

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [directory...]",
	Short: "List the SDKs and common material found",
	Long: `Scan the PalmDev prefix, the configured scan_dirs and any directories
listed, and print the resulting inventory without writing any files.

The default SDK is chosen the same way as when writing specs files, honoring
--default from the root command's configuration (default_sdk).`,
	Example: `  # Show the inventory as a table
  palmdev-prep list

  # Machine-readable output
  palmdev-prep list --format json

See Also: palmdev-prep, palmdev-prep doctor`,
	RunE: runList,
}

// inventoryListing is the machine-readable form of an inventory.
type inventoryListing struct {
	SDKs    []*sdk.Root `json:"sdks" yaml:"sdks" toml:"sdks"`
	Generic []*sdk.Root `json:"generic" yaml:"generic" toml:"generic"`
	Default string      `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	status := newRunStatus(cmd.ErrOrStderr())

	inv := scanAll(cmd.Context(), cfg, args, nil, status)
	defer inv.Store().Release()

	sel := sdk.SelectDefault(inv, cfg.DefaultSDK)
	if sel.NotFound {
		status.Warnf("SDK '%s' not found -- using highest found instead", cfg.DefaultSDK)
	}

	if err := writeListing(cmd.OutOrStdout(), newListing(inv, sel), listFormat); err != nil {
		return err
	}
	return status.Err()
}

func newListing(inv *sdk.Inventory, sel sdk.Selection) inventoryListing {
	l := inventoryListing{
		SDKs:    inv.SDKs(),
		Generic: append([]*sdk.Root{}, inv.Generic()...),
	}
	if sel.Root != nil {
		l.Default = sel.Root.Key
	}
	return l
}

// writeListing encodes l in the named format.
func writeListing(w io.Writer, l inventoryListing, format string) error {
	switch format {
	case "text":
		return writeListingText(w, l)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(l), "encoding JSON")
	case "yaml":
		data, err := fileutil.MarshalYAML(l)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing YAML")
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(l), "encoding TOML")
	default:
		err := errors.Newf("unknown format %q", format)
		return errors.NewUserError(err, "Use --format text, json, yaml or toml")
	}
}

func writeListingText(w io.Writer, l inventoryListing) error {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if len(l.SDKs) == 0 {
		fmt.Fprintln(w, "No SDKs found")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("SDK"), bold("HEADERS"), bold("LIBRARIES"), bold("PATH"))
		for _, r := range l.SDKs {
			key := r.Key
			if key == l.Default {
				key = green(key + " *")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", key, orNone(r.Headers), orNone(r.Libraries), r.Prefix)
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, "writing table")
		}
	}

	if len(l.Generic) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bold("Common material:"))
		for _, r := range l.Generic {
			fmt.Fprintf(w, "  %s (headers: %s, libraries: %s)\n", r.Prefix, orNone(r.Headers), orNone(r.Libraries))
		}
	}

	return nil
}
