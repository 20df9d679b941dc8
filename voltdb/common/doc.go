// Package common provides the shared value types of the driver: the client
// configuration, the typed error taxonomy and the logging setup.
//
// The package focuses on:
//   - Plain configuration values consumed once at session construction
//   - A small set of typed errors that the session and wire layers agree on
//   - Leveled, named loggers shared by all driver packages
//
// Key Components:
//
//   - ClientConfig: describes the target server, optional credentials and
//     TCP socket tuning. Created by the caller (or the CLI via viper) and
//     handed to session.Connect.
//
//   - IPPort: a host/port pair with a parser for "host:port" strings.
//
//   - ConnectionError, DecodeError, ServerError, ErrAuthFailed,
//     ErrConnectionNotAvailable: the error taxonomy of the driver.
//
//   - CreateLogger / InitLoggers: logger factory with custom formatting,
//     used as the global logger factory for all driver packages.
package common
