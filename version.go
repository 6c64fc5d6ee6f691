// Package jot carries the version of the jot.lol JSON document tree library.
package jot

// Version is the current release tag.
const Version = "v0.1.0"
