// Package connectors provides implementations of the DocumentSource
// interface. Each connector knows how to enumerate and read saved portal
// pages from one kind of location.
package connectors
