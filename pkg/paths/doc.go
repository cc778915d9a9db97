// Package paths provides path handling shared by the commands.
//
// User-supplied paths (--dir, --out, --config, token files) go through
// Normalize, which expands a leading ~ to the home directory, resolves
// relative paths against the working directory and cleans the result.
//
// # Environment Variables
//
//   - XDG_STATE_HOME: base directory for the log file
//     (default: the platform state directory)
//   - HOME: used when the home directory cannot be determined otherwise
package paths
