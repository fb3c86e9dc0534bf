// Package browser opens the served site in the user's default web browser.
//
// Launching a browser is best-effort: headless machines, containers and CI have no
// browser, so failures are only logged.
package browser
