package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/sdk"
)

// isInteractive reports whether stdin is a terminal.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// findSDK runs the fuzzy finder over roots and returns the chosen index.
var findSDK = func(roots []*sdk.Root) (int, error) {
	return fuzzyfinder.Find(
		roots,
		func(i int) string {
			return roots[i].Key
		},
		fuzzyfinder.WithPromptString("Default SDK> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			r := roots[i]
			return fmt.Sprintf("SDK: %s\nPath: %s\nHeaders: %s\nLibraries: %s",
				r.Key, r.Prefix, orNone(r.Headers), orNone(r.Libraries))
		}),
	)
}

// pickSDK lets the user replace sel with an interactively chosen SDK.
// Aborting the finder keeps sel.
func pickSDK(inv *sdk.Inventory, sel sdk.Selection) (sdk.Selection, error) {
	if !isInteractive() {
		err := errors.New("--pick-default needs an interactive terminal")
		return sel, errors.NewUserError(err, "Use --default SDK instead")
	}

	roots := inv.SDKs()
	if len(roots) == 0 {
		return sel, nil
	}

	idx, err := findSDK(roots)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return sel, nil
		}
		return sel, errors.Wrap(err, "interactive SDK choice failed")
	}

	return sdk.Selection{Root: roots[idx]}, nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
