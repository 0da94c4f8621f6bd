// Package domain defines the MCP tool schemas and handlers for the fuzzy
// probability calculator service, plus the in-memory registry of live
// calculator engines the handlers operate on.
package domain
