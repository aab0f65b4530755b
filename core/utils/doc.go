// Package utils provides conversion helpers for raw database values.
//
// The emulator schemas are scanned into generic maps because their column
// sets differ, which leaves the driver's native types ([]byte for text
// columns, assorted integer widths) in the result. ToInt and ToString
// normalize those values.
package utils
