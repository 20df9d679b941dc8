// Package cmd implements the command-line interface of the volt client. It
// provides a hierarchical command structure for running ad-hoc SQL and for
// working with stored procedures on a server.
//
// The package is organized into several subpackages:
//
//   - query: Run ad-hoc SQL statements and latency benchmarks
//   - proc: List, invoke and upload stored procedures, send liveness probes
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See volt -help for a list of all commands.
package cmd
