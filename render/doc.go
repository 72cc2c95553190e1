// SPDX-License-Identifier: MIT

// Package render writes a grouping.Partition for people and spreadsheets.
//
// WriteText emits one block per group (a name per line, a blank line after
// each block), then a blank line, then the outliers one per line.
// WriteXLSX / SaveXLSX produce a workbook with a "Groups" and an
// "Outliers" sheet.
package render
