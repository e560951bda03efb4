// Package property implements the project-wide key/value bag that seeds task
// defaults and receives task output.
//
// # Sources
//
// Properties arrive from three places, in increasing precedence:
//
//   - `property` blocks in build files (only set when absent, unless the
//     block asks to override),
//   - a YAML property file given on the command line,
//   - `-D key=value` definitions.
//
// Tasks publish values back into the same store (`return_property`,
// `status_property`), which later tasks can read through the build file's
// `prop()` function.
//
// # Drush defaults
//
// DefaultsFrom reads the `drush.*` keys and hands the result to the drush
// package as a plain struct, so the command assembler never looks anything
// up by itself.
package property
