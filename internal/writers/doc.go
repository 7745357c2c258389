// Package writers holds helpers shared by tools that stream to stdout.
package writers
