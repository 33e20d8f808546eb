// Package commands provides the command-line interface for the
// image-encryption tool.
//
// It implements commands for:
//   - key generation
//   - encryption
//   - decryption
//
// Command-line parsing and flag binding go through cobra and viper;
// configuration validation lives in the config package.
package commands
