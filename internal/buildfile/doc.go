// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package buildfile reads HCL build files describing Drush tasks.
//
// A build file is a flat, ordered list of blocks:
//
//	property "drush.root" {
//	  value = "/var/www"
//	}
//
//	drush "status" {
//	  command = "status"
//	  assume  = "yes"
//
//	  option "format" { value = "json" }
//	  param { value = "--fields=bootstrap" }
//	}
//
// Loading only parses and validates the structure. Attribute expressions
// are evaluated later, one block at a time, against the property store as
// it is at that moment. This is what lets a task read, through prop(), the
// output another task published earlier in the same run.
package buildfile
