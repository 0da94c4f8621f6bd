// Package service assembles the calculator MCP server and its transports.
package service
