// Package history selects three-month windows of a product's price history
// for charting. The newest window ends in the month of the latest sample
// and older windows are reached by moving the month offset back in steps
// of [Step].
package history
