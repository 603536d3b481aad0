package sdk

import (
	"context"
	"os"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/logging"
)

// sdkPrefix marks the entries of a base directory that are SDK trees.
const sdkPrefix = "sdk-"

// Analyzer scans base directories into an Inventory.
type Analyzer struct {
	inv    *Inventory
	report *Reporter
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithReporter makes the Analyzer describe each scan on r.
func WithReporter(r *Reporter) Option {
	return func(a *Analyzer) {
		a.report = r
	}
}

// NewAnalyzer returns an Analyzer filling inv.
func NewAnalyzer(inv *Inventory, opts ...Option) *Analyzer {
	a := &Analyzer{inv: inv}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Inventory returns the inventory being filled.
func (a *Analyzer) Inventory() *Inventory {
	return a.inv
}

// Analyze scans base for "sdk-*" subdirectories and for common material in
// base itself. A base that cannot be listed is skipped without error.
//
// SDK keys already in the inventory take precedence: a later "sdk-*" entry
// with the same canonical key is reported as hidden and not stored. Entries
// are visited in lexical order.
func (a *Analyzer) Analyze(ctx context.Context, base string) error {
	logger := logging.FromContext(ctx).With("base", base)

	entries, err := os.ReadDir(base)
	if err != nil {
		logger.Debug("skipping unreadable scan directory", "error", err)
		return nil
	}

	a.report.scanning(base)

	matched := 0
	for _, e := range entries {
		name := e.Name()
		if !HasPrefixFold(name, sdkPrefix) {
			continue
		}
		path, err := JoinPath(base, name)
		if err != nil {
			return errors.Wrapf(err, "scanning %s", base)
		}
		if !IsDir(path) {
			continue
		}
		matched++

		key := CanonicalKey(a.inv.Store(), name)
		if overriding, ok := a.inv.Lookup(key); ok {
			a.report.entry(name, nil, overriding, true)
			logger.Info("SDK hidden by earlier one",
				"entry", name, "key", key, "hidden_by", overriding.Prefix)
			continue
		}

		root, err := NewRoot(a.inv.Store(), base, name)
		if err != nil {
			return errors.Wrapf(err, "scanning %s", base)
		}
		a.report.entry(name, root, nil, true)

		if a.inv.AddSDK(key, root) {
			logger.Debug("found SDK", "key", key, "headers", root.Headers, "libraries", root.Libraries)
		} else {
			logger.Info("ignoring SDK without headers", "entry", name)
		}
	}

	if matched == 0 {
		a.report.none()
	}

	root, err := NewRoot(a.inv.Store(), base, "")
	if err != nil {
		return errors.Wrapf(err, "scanning %s", base)
	}
	if a.inv.AddGeneric(root) {
		a.report.common(base, root)
		logger.Debug("found common material", "headers", root.Headers, "libraries", root.Libraries)
	}

	a.report.done()
	return nil
}
