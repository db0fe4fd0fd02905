// Package system contains the per-tick pipeline stages. Each system caches its
// component stores at construction and reads input only through the TickContext.
package system
