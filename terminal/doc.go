// Package terminal owns the tcell screen: colour mode selection, lifecycle as a
// service, input event forwarding and emergency restoration after a crash.
package terminal
