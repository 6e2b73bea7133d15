// SPDX-License-Identifier: MIT

// Package config defines the settings of one grassfire run.
//
// Values come from Default, may be overlaid by an HCL file through Load, and
// are finally overridden by command-line flags (see internal/cli). Validate
// is called once the layers are merged.
//
// Example file:
//
//	rows        = 20
//	cols        = 40
//	start_row   = 0
//	start_col   = 5
//	goal_row    = 19
//	goal_col    = 30
//	density     = 25
//	seed        = 7
//	renderer    = "text"
//	log_level   = "debug"
package config
