package doctor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/logging"
	"github.com/palmdev/palmdev-prep/internal/sdk"
	"github.com/palmdev/palmdev-prep/pkg/fileutil"
)

// PrefixCheck verifies that the PalmDev prefix is a directory.
type PrefixCheck struct {
	prefix string
}

var _ Check = (*PrefixCheck)(nil)

// NewPrefixCheck creates a check for the PalmDev prefix.
func NewPrefixCheck(prefix string) *PrefixCheck {
	return &PrefixCheck{prefix: prefix}
}

// Name returns the unique identifier for this check.
func (c *PrefixCheck) Name() string { return "palmdev-prefix" }

// Category returns the grouping for this check.
func (c *PrefixCheck) Category() string { return "prefix" }

// Run executes the check.
func (c *PrefixCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.prefix},
	}

	info, err := os.Stat(c.prefix)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityError
		result.Message = "PalmDev prefix " + c.prefix + " does not exist"
		result.FixHint = "install an SDK under " + c.prefix + " or set palmdev_prefix"
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat %s: %v", c.prefix, err)
	case !info.IsDir():
		result.Status = SeverityError
		result.Message = c.prefix + " is not a directory"
	default:
		result.Status = SeverityPass
		result.Message = "PalmDev prefix " + c.prefix + " found"
	}
	return result
}

// ScanDirsCheck verifies that every extra scan directory can be opened.
type ScanDirsCheck struct {
	dirs []string
}

var _ Check = (*ScanDirsCheck)(nil)

// NewScanDirsCheck creates a check for the extra scan directories.
func NewScanDirsCheck(dirs []string) *ScanDirsCheck {
	return &ScanDirsCheck{dirs: dirs}
}

// Name returns the unique identifier for this check.
func (c *ScanDirsCheck) Name() string { return "scan-dirs" }

// Category returns the grouping for this check.
func (c *ScanDirsCheck) Category() string { return "prefix" }

// Run executes the check.
func (c *ScanDirsCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if len(c.dirs) == 0 {
		result.Status = SeverityInfo
		result.Message = "no extra scan directories configured"
		return result
	}

	var missing []string
	for _, dir := range c.dirs {
		if !sdk.IsDir(dir) {
			missing = append(missing, dir)
		}
	}

	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d of %d scan directories cannot be opened", len(missing), len(c.dirs))
		result.Details = map[string]any{"missing": missing}
		result.FixHint = "remove them from scan_dirs or create them"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d scan directories found", len(c.dirs))
	return result
}

// SDKCheck reports on the scanned SDK inventory and the default choice.
type SDKCheck struct {
	inv       *sdk.Inventory
	requested string
}

var _ Check = (*SDKCheck)(nil)

// NewSDKCheck creates a check over an already scanned inventory.
// requested is the configured default SDK name, possibly empty.
func NewSDKCheck(inv *sdk.Inventory, requested string) *SDKCheck {
	return &SDKCheck{inv: inv, requested: requested}
}

// Name returns the unique identifier for this check.
func (c *SDKCheck) Name() string { return "sdks" }

// Category returns the grouping for this check.
func (c *SDKCheck) Category() string { return "sdk" }

// Run executes the check.
func (c *SDKCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	roots := c.inv.SDKs()
	keys := make([]string, 0, len(roots))
	for _, r := range roots {
		keys = append(keys, r.Key)
	}
	result.Details = map[string]any{
		"sdks":    keys,
		"generic": len(c.inv.Generic()),
	}

	if len(roots) == 0 {
		result.Status = SeverityWarning
		result.Message = "no SDKs found; only common material will be used"
		result.FixHint = "install an SDK as an sdk-* directory under the PalmDev prefix"
		return result
	}

	sel := sdk.SelectDefault(c.inv, c.requested)
	result.Details["default"] = sel.Root.Key
	if sel.NotFound {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("SDK '%s' not found -- using highest found instead", c.requested)
		result.FixHint = "set default_sdk to one of the found SDKs"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d SDKs found, default '%s'", len(roots), sel.Root.Key)
	return result
}

// SpecsFile is a specs file the installation is expected to hold.
type SpecsFile struct {
	Target  string
	Path    string
	Content []byte
}

// SpecsCheck verifies that each target's specs directory is writable and
// that the installed specs file matches what would be generated now.
type SpecsCheck struct {
	files []SpecsFile
	stale []SpecsFile
}

var (
	_ Check = (*SpecsCheck)(nil)
	_ Fixer = (*SpecsCheck)(nil)
)

// NewSpecsCheck creates a check over the expected specs files.
func NewSpecsCheck(files []SpecsFile) *SpecsCheck {
	return &SpecsCheck{files: files}
}

// Name returns the unique identifier for this check.
func (c *SpecsCheck) Name() string { return "specs-files" }

// Category returns the grouping for this check.
func (c *SpecsCheck) Category() string { return "specs" }

// Run executes the check.
func (c *SpecsCheck) Run(ctx context.Context) *CheckResult {
	logger := logging.FromContext(ctx)
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	c.stale = nil

	var missingDirs, readOnly, stale []string
	for _, f := range c.files {
		dir := filepath.Dir(f.Path)
		if !sdk.IsDir(dir) {
			missingDirs = append(missingDirs, dir)
			continue
		}
		if !isDirectoryWritable(dir) {
			readOnly = append(readOnly, dir)
		}

		same, err := fileutil.SameContent(f.Path, f.Content)
		if err != nil || !same {
			logger.Debug("specs file out of date", "target", f.Target, "path", f.Path, "error", err)
			stale = append(stale, f.Path)
			c.stale = append(c.stale, f)
		}
	}

	result.Details = map[string]any{}
	if len(missingDirs) > 0 {
		result.Details["missing_dirs"] = missingDirs
	}
	if len(readOnly) > 0 {
		result.Details["read_only"] = readOnly
	}
	if len(stale) > 0 {
		result.Details["stale"] = stale
	}

	switch {
	case len(missingDirs) > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d target directories missing", len(missingDirs))
		result.FixHint = "install the GCC cross-compiler or set exec_prefix"
	case len(stale) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d specs files missing or out of date", len(stale))
		result.Fixable = len(readOnly) == 0
		result.FixHint = "run palmdev-prep"
		if len(readOnly) > 0 {
			result.FixHint = "run palmdev-prep as root"
		}
	case len(readOnly) > 0:
		result.Status = SeverityInfo
		result.Message = "specs files are current but their directories are not writable"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d specs files up to date", len(c.files))
	}

	return result
}

// CanFix reports whether Run found stale specs files.
func (c *SpecsCheck) CanFix() bool {
	return len(c.stale) > 0
}

// Fix rewrites every stale specs file found by Run.
func (c *SpecsCheck) Fix(_ context.Context) []FixResult {
	results := make([]FixResult, 0, len(c.stale))
	for _, f := range c.stale {
		result := FixResult{Path: f.Path}
		if err := fileutil.AtomicWriteFile(f.Path, f.Content, fileutil.DefaultFilePerm); err != nil {
			result.Description = "failed to write " + f.Target + " specs"
			result.Error = errors.Wrapf(err, "writing %s", f.Path)
		} else {
			result.Fixed = true
			result.Description = "wrote " + f.Target + " specs"
		}
		results = append(results, result)
	}
	return results
}

// isDirectoryWritable tests if a directory is writable by creating a temp file.
func isDirectoryWritable(path string) bool {
	tmpFile, err := os.CreateTemp(path, ".palmdev-prep-doctor-*")
	if err != nil {
		return false
	}

	tmpPath := tmpFile.Name()
	tmpFile.Close()
	os.Remove(tmpPath)

	return true
}
