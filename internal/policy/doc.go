// Package policy is the authoritative rule set for the newsroom: it resolves
// actors, decides article and comment visibility, validates lifecycle
// transitions, and plans ownership and vote changes.
//
// Every function is pure. Inputs are value snapshots (domain.Actor,
// domain.Article) and outputs are a patch plus an effect list, so services can
// commit the result through the store with a single conditional write and
// tests need no store at all.
package policy
