// Package sim drives a z16.Machine to completion: it runs the fetch-decode-
// execute loop under a cycle budget, services the three environment calls
// over an injectable writer, and reports fatal errors with the program
// counter at which they occurred.
package sim
