// Package handlers implements the netbox-operator commands.
package handlers
