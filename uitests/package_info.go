// Package uitests contains the browser-driven test suite for the CLMS web
// interface: login, dashboard tab navigation, and console error detection.
// It runs inside the same harness as the API suite, against a real browser
// managed by the browser package.
package uitests
