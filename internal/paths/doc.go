// Package paths resolves the install locations palmdev-prep reads from and
// writes to.
//
// # Install Locations
//
// SDKs are looked for under [DefaultPalmDevPrefix] (/opt/palmdev) plus any
// configured directories. One specs file is written per compiler target:
//
//	paths.SpecsFile("/usr/local/lib/gcc-lib", "m68k-palmos")
//	// /usr/local/lib/gcc-lib/m68k-palmos/specs
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the location of palmdev-prep's
// own config file:
//
//	paths.ConfigFile() // ~/.config/palmdev-prep/config.yaml
package paths
