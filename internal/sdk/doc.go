// Package sdk models the Palm OS SDK trees installed under a PalmDev prefix.
//
// A root is a directory holding a headers subdirectory ("include" or
// "Incs") and/or a libraries subdirectory ("lib" or "GCC Libraries"). A root
// found as an "sdk-*" entry of a scanned directory is an SDK root and is
// keyed by its canonical key: "sdk-4.0", "PalmOSSDK-4.0" and "sdk-4" all
// answer to "4". The scanned directory itself may also be a generic root
// whose material applies whatever SDK is chosen.
//
// An [Analyzer] fills an [Inventory] one base directory at a time. The first
// SDK seen for a key wins; later ones are reported as hidden. [SelectDefault]
// picks the SDK used when the compiler is given no -palmos option.
package sdk
