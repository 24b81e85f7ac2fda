// Package browser manages the headless Chrome session used by the UI test
// suite. It wraps go-rod with the small surface the tests need: one page at a
// time, a bounded navigation timeout, and continuous capture of the page's
// console output so tests can assert on it afterwards.
package browser
