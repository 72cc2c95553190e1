// SPDX-License-Identifier: MIT

// Package ranking collects scored candidate groups into score tiers.
//
// A Table maps every score to the tier of groups that reached it and
// remembers the distinct scores. Inserts are safe for concurrent use so
// that scoring can be fanned out; Seal then sorts every tier
// lexicographically and freezes the table, making its contents independent
// of insertion order.
package ranking
