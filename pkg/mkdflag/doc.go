// SPDX-License-Identifier: MPL-2.0

// Package mkdflag defines the flag configuration consumed by the markup compiler.
//
// A [Set] is a fixed-size collection of boolean switches indexed by [ID]. The
// registry ([Registry], [Lookup], [ByName]) names every identifier and records
// its display polarity: a negated entry such as "LINKS" for [NoLinks] means the
// stored bit is the disabled state of the feature a user reads about.
//
// A nil *Set is valid everywhere: reads report "no flags set" and writes are
// no-ops. Sets are not synchronized; share them read-only across goroutines.
package mkdflag
